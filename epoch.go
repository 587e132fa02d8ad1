package reprozip

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EpochEnv is the environment variable consulted for the canonical
// timestamp, following the reproducible-builds SOURCE_DATE_EPOCH
// convention. Its value is a base-10 integer count of Unix seconds.
const EpochEnv = "SOURCE_DATE_EPOCH"

// DefaultEpoch is the timestamp stamped on entries when no override is
// set: the minimum date representable in zip's MS-DOS time encoding.
var DefaultEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// The MS-DOS date-time encoding covers 1980 through 2107. Out-of-range
// overrides clamp to the nearest bound so archives stay loadable by
// standard readers.
var (
	minModified = DefaultEpoch
	maxModified = time.Date(2107, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// EpochLookup reports the value of an environment variable. The default
// is os.LookupEnv; tests may substitute a fixed table.
type EpochLookup func(key string) (string, bool)

// resolveEpoch computes the canonical timestamp for one entry. The
// override is re-read on every call, so a change mid-process takes
// effect on the next entry added.
func resolveEpoch(lookup EpochLookup) (time.Time, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	raw, ok := lookup(EpochEnv)
	if !ok || raw == "" {
		return DefaultEpoch, nil
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidEpoch, raw)
	}
	return clampModified(time.Unix(secs, 0).UTC()), nil
}

func clampModified(t time.Time) time.Time {
	if t.Before(minModified) {
		return minModified
	}
	if t.After(maxModified) {
		return maxModified
	}
	return t
}
