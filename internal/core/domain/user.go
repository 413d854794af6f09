package domain

// User represents an application user. Every entity and core operation is
// scoped to a user id; ownership is always checked explicitly rather than
// read from ambient state.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
