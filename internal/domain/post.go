package domain

import (
	"strings"
	"time"
)

// Field limits for posts.
const (
	MaxPostTitleLength   = 200
	MaxPostContentLength = 5000
)

// Post is a titled piece of content. Posts are not related to users.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostInput holds the caller-provided fields for a new post.
type PostInput struct {
	Title   string
	Content string
}

// Normalize returns a copy with whitespace trimmed.
func (in PostInput) Normalize() PostInput {
	return PostInput{
		Title:   strings.TrimSpace(in.Title),
		Content: strings.TrimSpace(in.Content),
	}
}

// Validate checks a normalized PostInput.
func (in PostInput) Validate() error {
	var details []FieldError
	if in.Title == "" {
		details = append(details, FieldError{Field: "title", Message: "Title is required"})
	}
	if in.Content == "" {
		details = append(details, FieldError{Field: "content", Message: "Content is required"})
	}
	if len(details) > 0 {
		return NewValidationError("Invalid input data", details...)
	}
	return nil
}

// PostPatch holds a partial update. Nil fields keep their current value.
type PostPatch struct {
	Title   *string
	Content *string
}

// Normalize returns a copy with the present fields trimmed.
func (p PostPatch) Normalize() PostPatch {
	var out PostPatch
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		out.Title = &title
	}
	if p.Content != nil {
		content := strings.TrimSpace(*p.Content)
		out.Content = &content
	}
	return out
}

// Validate checks a normalized PostPatch.
func (p PostPatch) Validate() error {
	var details []FieldError
	if p.Title != nil && *p.Title == "" {
		details = append(details, FieldError{Field: "title", Message: "Title is required"})
	}
	if p.Content != nil && *p.Content == "" {
		details = append(details, FieldError{Field: "content", Message: "Content is required"})
	}
	if len(details) > 0 {
		return NewValidationError("Invalid input data", details...)
	}
	return nil
}

// Apply returns post with the patch merged in.
func (p PostPatch) Apply(post Post) Post {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	return post
}
