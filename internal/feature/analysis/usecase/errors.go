// Package usecase implements the business logic around the indicator engine:
// refreshing persisted snapshots, ranking stocks by trend score, and
// assembling chart payloads.
package usecase

import "errors"

var (
	// ErrUnknownTicker is returned when no active stock matches the
	// requested ticker.
	ErrUnknownTicker = errors.New("unknown ticker")

	// ErrNoSnapshot is returned when a ticker has no persisted indicator
	// snapshot yet.
	ErrNoSnapshot = errors.New("no indicator snapshot")
)
