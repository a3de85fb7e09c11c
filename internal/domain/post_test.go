package domain

import "testing"

func TestPostInput(t *testing.T) {
	in := PostInput{Title: " Hello ", Content: "\tworld\n"}.Normalize()
	if in.Title != "Hello" || in.Content != "world" {
		t.Errorf("Expected trimmed fields, got %+v", in)
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err := PostInput{Title: " ", Content: " "}.Normalize().Validate()
	de, ok := AsError(err)
	if !ok {
		t.Fatalf("Expected *Error, got %v", err)
	}
	if len(de.Details) != 2 {
		t.Fatalf("Expected two details, got %+v", de.Details)
	}
	if de.Details[0].Field != "title" || de.Details[1].Field != "content" {
		t.Errorf("Unexpected detail fields: %+v", de.Details)
	}
}

func TestPostPatch(t *testing.T) {
	post := Post{ID: 1, Title: "old", Content: "body"}

	merged := PostPatch{Title: strPtr(" new ")}.Normalize().Apply(post)
	if merged.Title != "new" {
		t.Errorf("Expected title %q, got %q", "new", merged.Title)
	}
	if merged.Content != "body" {
		t.Errorf("Expected content to be retained, got %q", merged.Content)
	}

	if err := (PostPatch{Content: strPtr("")}).Validate(); !IsKind(err, KindValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}
