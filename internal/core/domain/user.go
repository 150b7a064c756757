package domain

// User is referenced by tasks as the optional assignee and by the login flow.
// PasswordHash never leaves the service layer.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
