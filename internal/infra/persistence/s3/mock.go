package s3

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// FakeClient is an in-memory ObjectClient for tests. Only the operations the
// adapter performs are implemented.
type FakeClient struct {
	mu      sync.Mutex
	objects map[string][]byte

	// FailPut, when set, is returned from PutObject to exercise the
	// silent-save-failure path.
	FailPut error
}

// NewFakeClient constructs an empty fake.
func NewFakeClient() *FakeClient {
	return &FakeClient{objects: make(map[string][]byte)}
}

// GetObject implements ObjectClient.
func (f *FakeClient) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(cp))}, nil
}

// PutObject implements ObjectClient.
func (f *FakeClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.FailPut != nil {
		return nil, f.FailPut
	}
	raw, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.objects[*in.Key] = raw
	f.mu.Unlock()
	return &s3.PutObjectOutput{}, nil
}

// Object returns the stored bytes for a key.
func (f *FakeClient) Object(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.objects[key]
	return raw, ok
}
