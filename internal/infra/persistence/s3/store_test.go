package s3

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeClient()
	adapter := NewWithClient(fake, "bucket", "state/doc.json")

	if _, found, err := adapter.Load(ctx); err != nil || found {
		t.Fatalf("missing object should report not found: found=%v err=%v", found, err)
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

	stored, ok := fake.Object("state/doc.json")
	if !ok || !bytes.Equal(stored, payload) {
		t.Fatalf("object not stored under the configured key")
	}
}

func TestDefaultKey(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeClient()
	adapter := NewWithClient(fake, "bucket", "")

	if err := adapter.Save(ctx, []byte("data")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := fake.Object(defaultKey); !ok {
		t.Fatalf("empty key should fall back to %q", defaultKey)
	}
}

func TestSaveError(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeClient()
	fake.FailPut = errors.New("access denied")
	adapter := NewWithClient(fake, "bucket", "")

	if err := adapter.Save(ctx, []byte("data")); err == nil {
		t.Fatalf("put failure should surface from Save")
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("missing bucket should fail construction")
	}
}
