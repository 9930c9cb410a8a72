package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hmfarooq/storefront-api/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// withRetry runs fn under the storage timeout and re-runs it a bounded
// number of times for transient failures. Every other error is terminal
// for the current request.
func withRetry(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		opCtx, cancel := context.WithTimeout(ctx, timeout)
		err = fn(opCtx)
		cancel()
		if apperr.KindOf(err) != apperr.Unavailable {
			return err
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(retryBackoff << attempt):
		}
	}
	return err
}

// storageErr tags timed-out storage calls as retryable; other errors pass
// through untouched.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.Unavailable, "Storage temporarily unavailable", err)
	}
	return err
}

// lockForUpdate takes the per-user cart row lock that serializes all
// read-modify-write cycles on a single cart.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	// sqlite has no row locks; its single-writer model already serializes.
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
