package retry

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/config"
)

const DefaultMaxRetries uint64 = 3

// Retryer retries an operation with exponential backoff. Only transient
// conflicts (ErrConcurrentModification) are retried; every other error is
// returned immediately.
type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	return backoff.Retry(func() error {
		err := operation()
		if err != nil && !errors.Is(err, common.ErrConcurrentModification) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
}
