// internal/domain/models/user.go
package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role partitions console users into two disjoint kinds.
type Role string

const (
	RoleOfficer Role = "officer"
	RoleAdmin   Role = "admin"
)

// User represents officers and admins as returned by the data source.
//
// NOTE:
//   - FirstName/LastName are optional; the empty string means "not set".
//   - Credits is a non-negative balance.
type User struct {
	ID        string `bson:"_id" json:"id"`
	Username  string `bson:"username" json:"username"`
	FirstName string `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Role      Role   `bson:"user_type" json:"user_type"` // officer | admin
	IsActive  bool   `bson:"is_active" json:"is_active"`
	Credits   int64  `bson:"credits" json:"credits"`
}

// IsOfficer reports whether the user counts toward officer statistics.
func (u User) IsOfficer() bool {
	return u.Role == RoleOfficer
}

// DisplayName returns the name shown in the console header.
func (u User) DisplayName() string {
	return DisplayName(u.FirstName, u.LastName, u.Username)
}

// Initials returns the avatar initials for the user.
func (u User) Initials() string {
	return Initials(u.FirstName, u.LastName, u.Username)
}

// DisplayName is the given name when present, otherwise the username,
// followed by the family name when present.
func DisplayName(first, last, username string) string {
	name := first
	if name == "" {
		name = username
	}
	if last != "" {
		if name == "" {
			return last
		}
		return name + " " + last
	}
	return name
}

// Initials is the upper-cased first letter of the given and family names
// when both are set, else the first letter of the username, else "A".
func Initials(first, last, username string) string {
	if first != "" && last != "" {
		return strings.ToUpper(firstRune(first) + firstRune(last))
	}
	if username != "" {
		return strings.ToUpper(firstRune(username))
	}
	return "A"
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
