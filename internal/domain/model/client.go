package model

// Client — клиент с отзывом (карточка в галерее «Happy Clients»).
type Client struct {
	// ID — идентификатор записи
	ID string `json:"id"`
	// Name — имя клиента
	Name string `json:"name"`
	// Designation — должность и компания (опционально)
	Designation string `json:"designation"`
	// Description — текст отзыва
	Description string `json:"description"`
	// ImageURL — ссылка на аватар (может быть пустой)
	ImageURL string `json:"image_url"`
}

// NewClient — данные для создания клиента (без ID).
type NewClient struct {
	Name        string
	Designation string
	Description string
	ImageURL    string
}
