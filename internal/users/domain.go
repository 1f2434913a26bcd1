package users

import "time"

// User represents a registered account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Preferences  []string
	CreatedAt    time.Time
}

// clone returns a deep copy so callers never share the stored slice. The
// preference list stays non-nil so it always serializes as a JSON array.
func (u User) clone() User {
	c := u
	c.Preferences = append([]string{}, u.Preferences...)
	return c
}
