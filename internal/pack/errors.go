package pack

import "errors"

// ErrScan covers directory-open failures, sprite decode failures, and
// fully-transparent sprites — all fatal to the invocation.
var ErrScan = errors.New("scan error")

// ErrPackingFailed means no heuristic produced a successful run.
var ErrPackingFailed = errors.New("packing failed")

// ErrPlacementAssertion means phase-4 re-trim dimensions disagreed with
// phase-2's recorded trimmed size — an internal invariant violation.
var ErrPlacementAssertion = errors.New("placement assertion failed")

// ErrIO covers failures creating the atlas canvas or compositing a sprite
// into it.
var ErrIO = errors.New("io error")
