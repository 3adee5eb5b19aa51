package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/metrics"
)

// DefaultStoreTimeout bounds a single store call when no timeout is configured.
const DefaultStoreTimeout = 5 * time.Second

func orDefaultTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultStoreTimeout
	}
	return timeout
}

// storeCall runs fn under the store timeout. A deadline overrun is reported as
// a domain StorageTimeout error; other errors pass through unchanged.
func storeCall[T any](ctx context.Context, timeout time.Duration, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, orDefaultTimeout(timeout))
	defer cancel()

	v, err := fn(ctx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		metrics.StoreTimeoutsTotal.WithLabelValues(op).Inc()
		var zero T
		return zero, domain.StorageTimeout(fmt.Errorf("%s: %w", op, err))
	}
	return v, err
}

// storeExec is storeCall for calls that only return an error.
func storeExec(ctx context.Context, timeout time.Duration, op string, fn func(ctx context.Context) error) error {
	_, err := storeCall(ctx, timeout, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// collect drains a callback cursor into a slice.
func collect[T any](list func(callback func(T) error) error) ([]T, error) {
	out := make([]T, 0)
	err := list(func(item T) error {
		out = append(out, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resultLabel names the outcome of an operation for metrics.
func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	return string(domain.KindOf(err))
}
