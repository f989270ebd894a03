package population

import "errors"

// ErrInvalidArgument is returned when a generator or profile parameter is out
// of range. Generators validate before sampling, so a failed call never
// returns a partial column.
var ErrInvalidArgument = errors.New("invalid argument")
