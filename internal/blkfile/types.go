package blkfile

import (
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes per-record decode outcomes and whole-scan results.
	Metrics interface {
		ObserveRecord(err error, started time.Time)
		ObserveScan(err error, height uint64, started time.Time)
	}
)
