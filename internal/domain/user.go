package domain

import (
	"strings"
	"time"
)

// Field limits for users, shared by request validation and the schema.
const (
	MaxUserNameLength  = 100
	MaxUserEmailLength = 255
)

// User represents a registered user.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserInput holds the caller-provided fields for a new user.
// ID and timestamps are assigned by the store.
type UserInput struct {
	Name  string
	Email string
}

// Normalize returns a copy with whitespace trimmed and the email lower-cased.
func (in UserInput) Normalize() UserInput {
	return UserInput{
		Name:  strings.TrimSpace(in.Name),
		Email: NormalizeEmail(in.Email),
	}
}

// Validate checks a normalized UserInput. Format and length rules are enforced
// at the request boundary; this only catches values that trimming emptied.
func (in UserInput) Validate() error {
	var details []FieldError
	if in.Name == "" {
		details = append(details, FieldError{Field: "name", Message: "Name is required"})
	}
	if in.Email == "" {
		details = append(details, FieldError{Field: "email", Message: "Invalid email format"})
	}
	if len(details) > 0 {
		return NewValidationError("Invalid input data", details...)
	}
	return nil
}

// UserPatch holds a partial update. Nil fields keep their current value.
type UserPatch struct {
	Name  *string
	Email *string
}

// Normalize returns a copy with the present fields normalized.
func (p UserPatch) Normalize() UserPatch {
	var out UserPatch
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		out.Name = &name
	}
	if p.Email != nil {
		email := NormalizeEmail(*p.Email)
		out.Email = &email
	}
	return out
}

// Validate checks a normalized UserPatch.
func (p UserPatch) Validate() error {
	var details []FieldError
	if p.Name != nil && *p.Name == "" {
		details = append(details, FieldError{Field: "name", Message: "Name is required"})
	}
	if p.Email != nil && *p.Email == "" {
		details = append(details, FieldError{Field: "email", Message: "Invalid email format"})
	}
	if len(details) > 0 {
		return NewValidationError("Invalid input data", details...)
	}
	return nil
}

// Apply returns u with the patch merged in. ID and CreatedAt never change.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
