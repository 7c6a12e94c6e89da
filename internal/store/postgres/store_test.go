package postgres

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func TestWrapWriteErr_NilIsNil(t *testing.T) {
	if err := wrapWriteErr("op", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestWrapWriteErr_UniqueViolationMapsToConflict(t *testing.T) {
	pqErr := &pq.Error{Code: "23505"}
	err := wrapWriteErr("insert resume", pqErr)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestWrapWriteErr_OtherPqErrorIsNotConflict(t *testing.T) {
	pqErr := &pq.Error{Code: "23503"}
	err := wrapWriteErr("insert resume", pqErr)
	if errors.Is(err, ErrConflict) {
		t.Errorf("did not expect ErrConflict for code 23503, got %v", err)
	}
	if err == nil {
		t.Fatal("expected a wrapped error")
	}
}

func TestWrapWriteErr_PlainErrorIsWrappedNotConflict(t *testing.T) {
	err := wrapWriteErr("insert resume", errors.New("connection refused"))
	if errors.Is(err, ErrConflict) {
		t.Errorf("did not expect ErrConflict for a non-pq error, got %v", err)
	}
}

func TestParseUUID_ValidString(t *testing.T) {
	want := uuid.New()
	got, err := parseUUID(want.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseUUID_InvalidStringReturnsError(t *testing.T) {
	if _, err := parseUUID("not-a-uuid"); err == nil {
		t.Error("expected an error for an invalid id")
	}
}

func TestNullableString_EmptyIsNil(t *testing.T) {
	if got := nullableString(""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestNullableString_NonEmptyPassesThrough(t *testing.T) {
	got := nullableString("January 2020")
	if got != "January 2020" {
		t.Errorf("expected the original string, got %v", got)
	}
}

func TestNullableJSON_EmptyIsNil(t *testing.T) {
	if got := nullableJSON(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := nullableJSON([]byte{}); got != nil {
		t.Errorf("expected nil for an empty slice, got %v", got)
	}
}

func TestNullableJSON_NonEmptyPassesThrough(t *testing.T) {
	b := []byte(`{"summary":"ok"}`)
	got := nullableJSON(b)
	if gotBytes, ok := got.([]byte); !ok || string(gotBytes) != string(b) {
		t.Errorf("expected the original bytes, got %v", got)
	}
}
