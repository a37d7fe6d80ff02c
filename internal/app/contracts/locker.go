package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	// TryLock returns false without error when another holder owns key.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
