package services

import (
	"time"

	"github.com/publibudget/go-commitment-engine/internal/common"
)

// Clock supplies the as-of instant for rule validity checks and lifecycle
// timestamps. Injectable so tests control time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return common.Now()
}
