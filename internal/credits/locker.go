package credits

import (
	"context"
	"sync"
)

// LocalLocker serializes work per key inside one process
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// NewLocalLocker creates an in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

// WithLock runs fn while holding the lock for key. Waiting stops when ctx is done.
func (l *LocalLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = lock
	}
	lock.refs++
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}()

	select {
	case lock.ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-lock.ch }()

	return fn(ctx)
}

type stackedLocker []Locker

// Stack takes every locker in order before running fn and releases them in reverse.
// A LocalLocker in front of a database locker keeps a single waiter per key on the database.
func Stack(lockers ...Locker) Locker {
	return stackedLocker(lockers)
}

func (s stackedLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if len(s) == 0 {
		return fn(ctx)
	}
	return s[0].WithLock(ctx, key, func(ctx context.Context) error {
		return s[1:].WithLock(ctx, key, fn)
	})
}
