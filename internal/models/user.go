package models

// User is a registered account. Records are created once and never updated.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}
