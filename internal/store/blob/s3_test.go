package blob

import (
	"context"
	"testing"
)

func TestNew_BuildsStoreFromConfig(t *testing.T) {
	store, err := New(context.Background(), Config{
		AccessKey: "test-key",
		SecretKey: "test-secret",
		Region:    "us-east-1",
		Endpoint:  "https://s3.us-east-1.example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error building store: %v", err)
	}
	if store == nil {
		t.Fatal("expected a non-nil store")
	}
}

func TestPublicURL_UsesCDNDomainWhenConfigured(t *testing.T) {
	store := &Store{region: "us-east-1", cdnDomain: "cdn.example.com"}
	got := store.PublicURL("resumes", "profile-1/123.pdf")
	want := "https://cdn.example.com/resumes/profile-1/123.pdf"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPublicURL_FallsBackToDirectBucketURL(t *testing.T) {
	store := &Store{region: "us-east-1"}
	got := store.PublicURL("resumes", "profile-1/123.pdf")
	want := "https://resumes.us-east-1.amazonaws.com/profile-1/123.pdf"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRemove_NoPathsIsNoOp(t *testing.T) {
	store := &Store{}
	if err := store.Remove(context.Background(), "resumes", nil); err != nil {
		t.Errorf("expected no error for an empty path list, got %v", err)
	}
}
