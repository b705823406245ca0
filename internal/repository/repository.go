package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// withRetry runs a datastore operation and retries it exactly once on a
// transient failure. Logical errors (missing records, duplicate keys,
// cancelled contexts) are returned as-is; anything that fails twice is
// wrapped in apperr.ErrStoreUnavailable.
func withRetry(op string, fn func() error) error {
	err := fn()
	if err == nil || !retryable(err) {
		return err
	}
	log.Warn().Err(err).Str("op", op).Msg("Datastore call failed, retrying once")
	if err = fn(); err != nil {
		return fmt.Errorf("%w: %s: %v", apperr.ErrStoreUnavailable, op, err)
	}
	return nil
}

func retryable(err error) bool {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
