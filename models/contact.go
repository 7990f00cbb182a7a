package models

// ContactMessage is never persisted; it only feeds the admin notification.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
