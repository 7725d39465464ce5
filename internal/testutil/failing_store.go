package testutil

import (
	"context"
	"sync"
)

// FailingStore is an in-memory key-value store that can be told to fail
// reads or writes, for exercising persistence error paths.
type FailingStore struct {
	mu      sync.Mutex
	data    map[string]string
	GetErr  error
	SetErr  error
	SetCall int
}

func NewFailingStore() *FailingStore {
	return &FailingStore{data: make(map[string]string)}
}

func (f *FailingStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *FailingStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetCall++
	if f.SetErr != nil {
		return f.SetErr
	}
	f.data[key] = value
	return nil
}

// Put seeds a raw value, bypassing SetErr.
func (f *FailingStore) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}
