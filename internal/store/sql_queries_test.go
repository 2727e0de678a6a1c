package store

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-manager/models"
)

func TestBuildUpdateUserQuery_NameOnly(t *testing.T) {
	name := "New Name"

	query, args, err := buildUpdateUserQuery(1, models.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET name = $1 WHERE id = $2"
	if query != want {
		t.Errorf("expected query %q, got %q", want, query)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if args[0] != name {
		t.Errorf("expected first arg %q, got %v", name, args[0])
	}
	if args[1] != int64(1) {
		t.Errorf("expected last arg to be the user id, got %v", args[1])
	}
}

func TestBuildUpdateUserQuery_AllFields(t *testing.T) {
	name := "New Name"
	email := "new@x.com"
	hash := "$2a$10$hash"

	query, args, err := buildUpdateUserQuery(7, models.UserPatch{
		Name:         &name,
		Email:        &email,
		PasswordHash: &hash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE users SET name = $1, email = $2, password = $3 WHERE id = $4"
	if query != want {
		t.Errorf("expected query %q, got %q", want, query)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(args))
	}
	if args[3] != int64(7) {
		t.Errorf("expected last arg to be the user id, got %v", args[3])
	}
}

func TestBuildUpdateUserQuery_EmptyPatch(t *testing.T) {
	_, _, err := buildUpdateUserQuery(1, models.UserPatch{})
	if !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}
