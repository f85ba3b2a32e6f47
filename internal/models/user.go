// Package models defines the records the application stores: user accounts,
// the farm profile, and products.
package models

// UserAccount is a full registered-user record as kept in the registered-user
// table, including the cleartext password. This reproduces the storage model of
// the original demo; the active session never holds the password (see User).
type UserAccount struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the password-stripped view of an account. It is what gets persisted
// under the current-session key and exposed to the rest of the application.
type User struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// StripPassword returns the session view of the account.
func (a UserAccount) StripPassword() User {
	return User{FullName: a.FullName, Username: a.Username, Email: a.Email}
}
