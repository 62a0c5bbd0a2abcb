package reconcile

import "fmt"

// CannotReconcileError is returned when a difference exists that the
// reconciler cannot express as a request script — an immutable-element
// add/remove, or a structural change outside the handler contracts of
// spec.md §4.D. The reconciler never emits a partial script (spec.md §4.B
// "Failure semantics"): on this error, Reconcile's caller gets no script at
// all.
type CannotReconcileError struct {
	Reason string
}

func (e *CannotReconcileError) Error() string {
	return fmt.Sprintf("cannot reconcile: %s", e.Reason)
}

// IndexError reports a self-check failure in the Index Planner phase
// (spec.md §4.C) — drift, overlap, or an out-of-bounds index. This is
// always an internal bug in the emitter, never a user-facing condition.
type IndexError struct {
	Reason string
	Script *Script
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index planner self-check failed: %s", e.Reason)
}
