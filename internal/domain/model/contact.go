package model

import "time"

// ContactSubmission — заявка из формы обратной связи на главной странице.
type ContactSubmission struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	City     string `json:"city"`
	// Timestamp — время создания, проставляется хранилищем
	Timestamp time.Time `json:"timestamp"`
}

// NewContact — поля формы обратной связи.
// Теги validate описывают схему формы (go-playground/validator).
type NewContact struct {
	FullName string `form:"fullName" validate:"min=2"`
	Email    string `form:"email" validate:"email"`
	Mobile   string `form:"mobile" validate:"min=10"`
	City     string `form:"city" validate:"min=2"`
}
