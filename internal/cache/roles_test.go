package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRoleStore struct {
	role  string
	err   error
	calls int
}

func (f *fakeRoleStore) GetUserRole(id int) (string, error) {
	f.calls++
	return f.role, f.err
}

func TestGetUserRoleWithoutRedis(t *testing.T) {
	store := &fakeRoleStore{role: "admin"}
	cache := NewRoleCache(store, nil, time.Second)

	role, err := cache.GetUserRole(context.Background(), 1)
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}
	if role != "admin" {
		t.Fatalf("expected admin, got %s", role)
	}

	// Without a client every lookup hits the store.
	if _, err := cache.GetUserRole(context.Background(), 1); err != nil {
		t.Fatalf("lookup error: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("expected 2 store reads, got %d", store.calls)
	}
}

func TestGetUserRolePropagatesStoreError(t *testing.T) {
	store := &fakeRoleStore{err: errors.New("store down")}
	cache := NewRoleCache(store, nil, time.Second)

	if _, err := cache.GetUserRole(context.Background(), 1); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

func TestInvalidateWithoutRedisIsNoop(t *testing.T) {
	cache := NewRoleCache(&fakeRoleStore{role: "estudiante"}, nil, time.Second)
	cache.Invalidate(context.Background(), 1)
}
