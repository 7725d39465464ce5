// Package kv is the string key-value persistence the trackers write to.
// Each key holds one opaque value; there are no transactions or expiry.
package kv

import "context"

type Store interface {
	// Get returns the value under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value under key.
	Set(ctx context.Context, key, value string) error
}
