package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName         = errors.New("contact name is required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrEmptyPhone        = errors.New("contact phone is required")
	ErrEmptyMunicipality = errors.New("contact municipality is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Contact is the requester's identity, passed through to notification and
// back-office concerns. The scheduling core only requires it to be complete.
type Contact struct {
	name         string
	email        string
	phone        string
	municipality string
}

func NewContact(name, email, phone, municipality string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	municipality = strings.TrimSpace(municipality)

	if name == "" {
		return Contact{}, ErrEmptyName
	}
	if !emailRegex.MatchString(email) {
		return Contact{}, ErrInvalidEmail
	}
	if phone == "" {
		return Contact{}, ErrEmptyPhone
	}
	if municipality == "" {
		return Contact{}, ErrEmptyMunicipality
	}

	return Contact{
		name:         name,
		email:        email,
		phone:        phone,
		municipality: municipality,
	}, nil
}

func (c Contact) Name() string         { return c.name }
func (c Contact) Email() string        { return c.email }
func (c Contact) Phone() string        { return c.phone }
func (c Contact) Municipality() string { return c.municipality }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
