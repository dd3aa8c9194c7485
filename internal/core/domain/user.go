package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials are transient login inputs; they exist only for the duration
// of a login submission.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration holds the sign-up form inputs. ConfirmPassword is checked
// client-side and never serialized.
type Registration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// Profile is the static metadata shown on the profile page. Only Username
// is dynamic; the rest mirrors what the profile view displays today.
type Profile struct {
	Name       string
	Username   string
	Bio        string
	JoinedDate string
}

// DefaultProfile returns the profile card for the given username.
func DefaultProfile(username string) Profile {
	return Profile{
		Name:       "Oliver Twist",
		Username:   username,
		Bio:        "It's Me, Hi!!! I'm the problem, it's ME!!!",
		JoinedDate: "January 2023",
	}
}
