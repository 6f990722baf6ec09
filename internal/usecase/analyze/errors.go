// Package analyze provides the use case that maps operation names onto the
// analysis core. It owns the fixed operation table the dispatcher exposes
// and the per-operation metrics.
package analyze

import "errors"

// ErrUnknownOperation indicates a requested metric name that is not in the
// operation table. The dispatcher surfaces this to callers; the analysis
// core itself has no error path.
var ErrUnknownOperation = errors.New("unknown operation")
