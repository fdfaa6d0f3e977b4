package redis

import (
	"context"
	"testing"
	"time"
)

func TestRunLockAcquireAndRelease(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	lock := NewRunLock(client)
	ctx := context.Background()

	acquired, err := lock.TryLock(ctx, "tpl-1", time.Minute)
	if err != nil || !acquired {
		t.Fatalf("expected first TryLock to succeed, got acquired=%v err=%v", acquired, err)
	}

	acquired, err = lock.TryLock(ctx, "tpl-1", time.Minute)
	if err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}
	if acquired {
		t.Fatalf("expected second TryLock to fail while lock is held")
	}

	if err := lock.Unlock(ctx, "tpl-1"); err != nil {
		t.Fatalf("unlock failed: %v", err)
	}

	acquired, err = lock.TryLock(ctx, "tpl-1", time.Minute)
	if err != nil || !acquired {
		t.Fatalf("expected TryLock after unlock to succeed, got acquired=%v err=%v", acquired, err)
	}
}

func TestRunLockIsPerTemplate(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	lock := NewRunLock(client)
	ctx := context.Background()

	if acquired, err := lock.TryLock(ctx, "tpl-1", time.Minute); err != nil || !acquired {
		t.Fatalf("expected lock on tpl-1, got acquired=%v err=%v", acquired, err)
	}

	if acquired, err := lock.TryLock(ctx, "tpl-2", time.Minute); err != nil || !acquired {
		t.Fatalf("expected independent lock on tpl-2, got acquired=%v err=%v", acquired, err)
	}
}

func TestRunLockExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	lock := NewRunLock(client)
	ctx := context.Background()

	if acquired, err := lock.TryLock(ctx, "tpl-1", time.Second); err != nil || !acquired {
		t.Fatalf("expected lock, got acquired=%v err=%v", acquired, err)
	}

	mr.FastForward(2 * time.Second)

	acquired, err := lock.TryLock(ctx, "tpl-1", time.Second)
	if err != nil || !acquired {
		t.Fatalf("expected lock to be reacquirable after TTL, got acquired=%v err=%v", acquired, err)
	}
}
