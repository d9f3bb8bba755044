package domain

// User is the domain model for account holders. The password is stored
// verbatim; this service does not hash credentials.
type User struct {
	ID       string
	Username string
	Password string
}
