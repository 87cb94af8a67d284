package store

import (
	"context"
	"errors"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"wordfreq/internal/logging"
)

const (
	openAttempts     = 5
	openInitialDelay = 200 * time.Millisecond
	openMaxDelay     = 2 * time.Second
)

// Open opens the index at path, retrying with backoff while another process
// holds the database lock. Other errors are returned immediately.
func Open(ctx context.Context, path string, log *zap.Logger) (*BoltStore, error) {
	log = logging.OrNop(log)

	var st *BoltStore
	err := retry.Do(
		func() error {
			var err error
			st, err = NewBoltStore(path)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(openAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(openInitialDelay),
		retry.MaxDelay(openMaxDelay),
		retry.RetryIf(isLocked),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("index is locked, retrying",
				zap.String("path", path),
				zap.Uint("attempt", n+1),
				zap.Error(err))
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func isLocked(err error) bool {
	return errors.Is(err, bbolt.ErrTimeout)
}
