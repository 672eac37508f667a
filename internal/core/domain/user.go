package domain

import "time"

// User models a registered account. PasswordHash is the bcrypt hash of the
// password; the plaintext is never stored.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"nome"`
	LastName     string    `json:"sobrenome"`
	Email        string    `json:"email"`
	Phone        string    `json:"numero"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
