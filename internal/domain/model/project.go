// Пакет model — доменные модели сайта CreativeAgency.
package model

// Project — проект из портфолио (карточка в галерее «Our Projects»).
type Project struct {
	// ID — идентификатор записи (UUID для новых, "1".."3" для seed-данных)
	ID string `json:"id"`
	// Name — название проекта
	Name string `json:"name"`
	// Description — описание проекта
	Description string `json:"description"`
	// ImageURL — ссылка на изображение (может быть пустой)
	ImageURL string `json:"image_url"`
}

// NewProject — данные для создания проекта (без ID).
type NewProject struct {
	Name        string
	Description string
	ImageURL    string
}
