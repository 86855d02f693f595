package ports

import "context"

// ListingLocker serializes status mutations of one listing inside this process.
// Lock blocks until the key is free or ctx is done and returns the release function.
// It must be acquired before a transaction begins, never inside one.
type ListingLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}
