package memory

import (
	"bytes"
	"context"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter()

	if _, found, err := adapter.Load(ctx); err != nil || found {
		t.Fatalf("fresh adapter should report not found: found=%v err=%v", found, err)
	}

	payload := []byte(`{"_version":4}`)
	if err := adapter.Save(ctx, payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, found, err := adapter.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load after save: found=%v err=%v", found, err)
	}
	if !bytes.Equal(raw, payload) {
		t.Fatalf("payload mismatch: %s", raw)
	}
}

func TestLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter()
	if err := adapter.Save(ctx, []byte("original")); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, _, _ := adapter.Load(ctx)
	raw[0] = 'X'

	again, _, _ := adapter.Load(ctx)
	if string(again) != "original" {
		t.Fatalf("stored payload was mutated through the returned slice")
	}
}

func TestSaveCopiesInput(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter()
	payload := []byte("original")
	if err := adapter.Save(ctx, payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	payload[0] = 'X'

	raw, _, _ := adapter.Load(ctx)
	if string(raw) != "original" {
		t.Fatalf("stored payload aliases the caller's slice")
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter()
	if err := adapter.Save(ctx, []byte("data")); err != nil {
		t.Fatalf("save: %v", err)
	}
	adapter.Reset()
	if _, found, _ := adapter.Load(ctx); found {
		t.Fatalf("reset adapter should report not found")
	}
}
