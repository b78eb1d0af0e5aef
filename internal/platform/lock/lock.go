// Package lock provides short-lived named mutual exclusion across replicas.
//
// A Lease is held until Release or until its TTL elapses, whichever comes first. Keys
// are caller-chosen strings; callers namespace them (for example "enlistment:accept:<id>").
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired is returned when another holder owns the key.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker acquires exclusive leases on keys.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Lease, error)
}

// Lease is a held lock. Release is safe to call more than once and never releases a
// lease that has since expired and been taken by another holder.
type Lease interface {
	Release(ctx context.Context) error
}
