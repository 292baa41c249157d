package tokenstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	tokenstore "github.com/reliefworks/reliefhub/internal/app/store/tokens"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
)

func TestIssueAndLookup(t *testing.T) {
	store := tokenstore.NewMemory()
	ctx := context.Background()

	issued, err := store.Issue(ctx, "user-1", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if issued.Value == "" {
		t.Fatal("expected non-empty token value")
	}

	got, err := store.Lookup(ctx, issued.Value)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.UserID != "user-1" {
		t.Errorf("UserID: got %q, want user-1", got.UserID)
	}
}

func TestLookup_Unknown(t *testing.T) {
	store := tokenstore.NewMemory()

	_, err := store.Lookup(context.Background(), "bogus")
	if !errors.Is(err, faults.ErrAuthentication) {
		t.Errorf("expected ErrAuthentication, got %v", err)
	}
}

func TestLookup_Expired(t *testing.T) {
	store := tokenstore.NewMemory()
	ctx := context.Background()

	issued, err := store.Issue(ctx, "user-1", -time.Second)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	// Negative ttl means no expiry, so this token stays valid.
	if _, err := store.Lookup(ctx, issued.Value); err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	short, err := store.Issue(ctx, "user-1", time.Nanosecond)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	_, err = store.Lookup(ctx, short.Value)
	if !errors.Is(err, faults.ErrAuthentication) {
		t.Errorf("expected ErrAuthentication for expired token, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	store := tokenstore.NewMemory()
	ctx := context.Background()

	issued, err := store.Issue(ctx, "user-1", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := store.Revoke(ctx, issued.Value); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	_, err = store.Lookup(ctx, issued.Value)
	if !errors.Is(err, faults.ErrAuthentication) {
		t.Errorf("expected ErrAuthentication after revoke, got %v", err)
	}

	// Revoking again is a no-op.
	if err := store.Revoke(ctx, issued.Value); err != nil {
		t.Errorf("second Revoke: %v", err)
	}
}
