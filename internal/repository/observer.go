package repository

import (
	"time"

	"github.com/google/uuid"
)

// QueryObserver receives store latency samples labelled by repository operation.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

func observe(o QueryObserver, label string, start time.Time) {
	if o != nil {
		o.ObserveDBQuery(label, time.Since(start))
	}
}

// validID reports whether id can reference a row; ids are UUIDs in storage and opaque everywhere else.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
