package domain

import "fmt"

// FetchError reports a failed snapshot fetch: daemon unreachable, request
// timeout, or a malformed response. It is recovered locally by the poll
// loop, which keeps the previous snapshot and tries again next tick.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DiffError reports an invariant violation inside a snapshot, such as a
// duplicate container id. Well-formed providers never produce one; when it
// occurs the tick's reconciliation is skipped and the error is logged.
type DiffError struct {
	ID     string
	Reason string
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("diff invariant violated for %q: %s", e.ID, e.Reason)
}
