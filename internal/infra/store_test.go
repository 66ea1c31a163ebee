package infra

import (
	"path/filepath"
	"testing"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashtrade.db")
	store, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.Get("user"); ok {
		t.Fatal("fresh store must report keys as absent")
	}

	if err := store.Set("user", []byte(`{"username":"Trader"}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok := store.Get("user")
	if !ok || string(value) != `{"username":"Trader"}` {
		t.Fatalf("unexpected value after set: %q (ok=%v)", value, ok)
	}

	if err := store.Remove("user"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := store.Get("user"); ok {
		t.Fatal("key still present after remove")
	}

	// Removing an absent key is a no-op
	if err := store.Remove("user"); err != nil {
		t.Fatalf("removing an absent key errored: %v", err)
	}
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flashtrade.db")

	store, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := store.Set("trades", []byte("[]")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok := reopened.Get("trades")
	if !ok || string(value) != "[]" {
		t.Fatalf("value lost across reopen: %q (ok=%v)", value, ok)
	}
}

func TestBoltStoreRequiresPath(t *testing.T) {
	if _, err := NewBoltStore(""); err == nil {
		t.Fatal("expected an error for an empty store path")
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()

	value := []byte("original")
	if err := store.Set("key", value); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value[0] = 'X'

	got, ok := store.Get("key")
	if !ok || string(got) != "original" {
		t.Fatalf("stored value aliased the caller's buffer: %q", got)
	}
}

func TestNullStoreDegradesSilently(t *testing.T) {
	store := NewNullStore()

	if err := store.Set("user", []byte("ignored")); err != nil {
		t.Fatalf("null store set errored: %v", err)
	}
	if _, ok := store.Get("user"); ok {
		t.Fatal("null store must always report absence")
	}
	if err := store.Remove("user"); err != nil {
		t.Fatalf("null store remove errored: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("null store close errored: %v", err)
	}
}
