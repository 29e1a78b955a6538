package indexer

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for indexer requests.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
