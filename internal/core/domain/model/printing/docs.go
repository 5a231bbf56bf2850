// Package printing sequences invoice readiness with print engine invocation.
//
// The Coordinator is an explicit state machine (Idle, DocumentReady,
// PrintRequested) driven by discrete events: order submitted, document painted,
// manual print requested, print completed, print failed. The readiness barrier
// between committing a submitted order and invoking the engine is an event from
// the presentation layer, not a wall-clock delay; a scheduled sweep enforces an
// upper bound on how long a requested print may stay pending.
package printing
