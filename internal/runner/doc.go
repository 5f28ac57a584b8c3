// Package runner distributes hashing work across a bounded pool of goroutines
// while keeping output order fixed.
//
// A run loads every task into a queue up front, starts the pool, and then
// emits results from the caller's goroutine strictly by input index: slot 0,
// then slot 1, and so on, regardless of the order workers finish. All shared
// state (queue, result slots, shutdown flag) lives behind a single mutex with
// one condition variable; Broadcast covers both "task available or shutting
// down" and "slot filled" waits, and every waiter rechecks its predicate in a
// loop.
//
// Failures stay per-file: a worker that cannot hash a path records the error
// in that task's result slot and moves on. Nothing short of process death
// stops a run early, which keeps the output line count equal to the input
// file count.
package runner
