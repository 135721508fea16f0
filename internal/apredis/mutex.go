package apredis

import (
	"context"
	"time"

	"github.com/bsm/redislock"
	"github.com/pkg/errors"
)

type Mutex interface {
	Lock(context.Context) error
	Extend(context.Context, time.Duration) error
	Unlock(context.Context) error
}

type MutexOption func(m *mutex)

// MutexOptionLockFor sets the initial lock duration for the mutex. If unspecified, the default initial lock duration
// is one minute. This duration can be extended by calling Extend(...) on the mutex once it's acquired.
func MutexOptionLockFor(d time.Duration) MutexOption {
	return func(m *mutex) {
		m.initialLockTime = d
	}
}

// MutexOptionLockMetadata appends additional data to the value used to obtain the lock in redis for debugging
// purposes.
func MutexOptionLockMetadata(metadata string) MutexOption {
	return func(m *mutex) {
		m.optsAppliers = append(m.optsAppliers, func(opts *redislock.Options) {
			opts.Metadata = metadata
		})
	}
}

// MutexOptionDetailedLockMetadata records the host and process that acquired the lock.
func MutexOptionDetailedLockMetadata() MutexOption {
	return MutexOptionLockMetadata(generateDetailedLockValue())
}

func MutexOptionRetryExponentialBackoff(min, max time.Duration) MutexOption {
	return func(m *mutex) {
		m.optsAppliers = append(m.optsAppliers, func(opts *redislock.Options) {
			opts.RetryStrategy = redislock.ExponentialBackoff(min, max)
		})
	}
}

func MutexOptionNoRetry() MutexOption {
	return func(m *mutex) {
		m.optsAppliers = append(m.optsAppliers, func(opts *redislock.Options) {
			opts.RetryStrategy = redislock.NoRetry()
		})
	}
}

// MutexOptionRetryFor sets how long the mutex will attempt to retry for a lock. This must be combined with a retry
// strategy or the default no-retry behavior will prevent retries. An earlier deadline already on the context wins.
func MutexOptionRetryFor(d time.Duration) MutexOption {
	return func(m *mutex) {
		m.lockContextCancellation = func(ctx context.Context) (context.Context, context.CancelFunc) {
			if currentDeadline, ok := ctx.Deadline(); ok && currentDeadline.Before(time.Now().Add(d)) {
				return ctx, func() {}
			}

			return context.WithTimeout(ctx, d)
		}
	}
}

// NewMutex creates a new mutex. Unless options are specified this mutex will not retry to obtain the lock. The
// default lock time is 1 minute.
func NewMutex(client Client, key string, options ...MutexOption) Mutex {
	m := &mutex{
		key:             key,
		lockClient:      redislock.New(client),
		initialLockTime: 1 * time.Minute,
	}

	for _, option := range options {
		option(m)
	}

	return m
}

func MutexIsErrNotObtained(err error) bool {
	return errors.Is(err, redislock.ErrNotObtained)
}

type mutex struct {
	key                     string
	lockContextCancellation func(context.Context) (context.Context, context.CancelFunc)
	lock                    *redislock.Lock
	lockClient              *redislock.Client
	initialLockTime         time.Duration
	optsAppliers            []func(*redislock.Options)
}

func (m *mutex) opts() *redislock.Options {
	if len(m.optsAppliers) == 0 {
		return nil
	}

	opts := &redislock.Options{}
	for _, applier := range m.optsAppliers {
		applier(opts)
	}

	return opts
}

func (m *mutex) Lock(ctx context.Context) error {
	if m.lock != nil {
		return errors.Errorf("mutex '%s' already locked", m.key)
	}

	if m.lockContextCancellation != nil {
		var cancel context.CancelFunc
		ctx, cancel = m.lockContextCancellation(ctx)
		defer cancel()
	}

	lock, err := m.lockClient.Obtain(ctx, m.key, m.initialLockTime, m.opts())
	if err != nil {
		return err
	}

	m.lock = lock
	return nil
}

func (m *mutex) Extend(ctx context.Context, d time.Duration) error {
	if m.lock == nil {
		return errors.Errorf("mutex '%s' not locked", m.key)
	}

	return m.lock.Refresh(ctx, d, m.opts())
}

func (m *mutex) Unlock(ctx context.Context) error {
	if m.lock == nil {
		return errors.Errorf("mutex '%s' not locked", m.key)
	}

	err := m.lock.Release(ctx)
	m.lock = nil
	return err
}
