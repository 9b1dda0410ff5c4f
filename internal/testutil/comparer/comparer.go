package comparer

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TimeWithinTolerance(tolerance time.Duration) cmp.Option {
	return cmp.Comparer(func(x, y time.Time) bool {
		diff := x.Sub(y)
		if diff < 0 {
			diff = -diff
		}
		return diff <= tolerance
	})
}

// IgnoreStamps skips the store assigned id and timestamps of T.
func IgnoreStamps[T any]() cmp.Option {
	var zero T
	return cmpopts.IgnoreFields(zero, "ID", "CreatedAt", "UpdatedAt")
}
