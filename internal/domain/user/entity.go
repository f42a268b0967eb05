package user

import "time"

// User is the account row. Password and OAuth identities are both optional
// so an account created through Google sign-in can later link a password
// and vice versa.
type User struct {
	ID           string
	Email        string
	PasswordHash *string

	FirstName   *string
	LastName    *string
	DisplayName *string

	OAuthProvider   *string
	OAuthProviderID *string

	IsManager bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolveDisplayName picks the name shown in the approvals view: an explicit
// display name wins, then "first last", then the email address.
func (u User) ResolveDisplayName() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	first, last := "", ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	if name := joinName(first, last); name != "" {
		return name
	}
	return u.Email
}

func joinName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
