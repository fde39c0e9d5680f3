// Package user holds the locally stored reader profile.
package user

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/matheuskafuri/hunttech/internal/lang"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidLanguage = errors.New("invalid language")
)

// User is the single reader profile kept on this machine. Preferences are
// category labels in whatever language was active when they were picked.
type User struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Preferences []string      `json:"preferences"`
	Language    lang.Language `json:"language"`
}

// New validates login input and builds a User. Blank and duplicate
// preferences are dropped.
func New(name, email string, language lang.Language, prefs []string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, ErrNameRequired
	}
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return User{}, ErrInvalidEmail
	}
	if !language.Valid() {
		return User{}, ErrInvalidLanguage
	}

	u := User{Name: name, Email: email, Language: language, Preferences: []string{}}
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p != "" && !u.HasPreference(p) {
			u.Preferences = append(u.Preferences, p)
		}
	}
	return u, nil
}

func (u User) HasPreference(label string) bool {
	for _, p := range u.Preferences {
		if p == label {
			return true
		}
	}
	return false
}

// TogglePreference adds label if missing and removes it otherwise, keeping
// the order of the rest.
func (u User) TogglePreference(label string) User {
	out := make([]string, 0, len(u.Preferences)+1)
	found := false
	for _, p := range u.Preferences {
		if p == label {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		out = append(out, label)
	}
	u.Preferences = out
	return u
}

// WithLanguage returns a copy of u switched to l. Preferences are kept as-is.
func (u User) WithLanguage(l lang.Language) User {
	prefs := make([]string, len(u.Preferences))
	copy(prefs, u.Preferences)
	u.Preferences = prefs
	u.Language = l
	return u
}

// Validate checks a User read back from storage.
func (u User) Validate() error {
	_, err := New(u.Name, u.Email, u.Language, u.Preferences)
	return err
}
