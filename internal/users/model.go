// Package users stores dashboard accounts. The API exposes no auth surface;
// the collection exists for the seeded admin account and for the credential
// check used by the (external) presentation shell.
package users

// User is an account record. The password field holds a bcrypt hash, never
// plain text, and stays out of JSON.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
