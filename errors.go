package reprozip

import "errors"

var (
	// ErrInvalidEpoch is returned when SOURCE_DATE_EPOCH is set but is not
	// a base-10 integer count of Unix seconds. A malformed override never
	// falls back to the default timestamp: that would silently produce an
	// archive irreproducible against builds where the override parses.
	ErrInvalidEpoch = errors.New("reprozip: invalid SOURCE_DATE_EPOCH")

	// ErrInsecurePath is returned by Extract when an archive member path
	// would escape the destination directory.
	ErrInsecurePath = errors.New("reprozip: insecure member path")
)
