package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// UserSummary is the non-secret profile slice returned on login.
type UserSummary struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
