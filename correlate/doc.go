// Package correlate implements the correlation engine that turns
// "subscribe to N topics, then publish" into a single asynchronous
// outcome. It owns the only real concurrency hazards in the module:
// counting subscription acknowledgements exactly once each, routing an
// inbound message to the right pending outcome, and guaranteeing that
// an outcome settles at most once under duplicate or racing delivery.
//
// Design decisions:
//   - Explicit state: the acknowledgement counter and the settlement
//     slot are first-class objects with atomic transitions, not mutable
//     locals captured by closures, so the race-safety contract is
//     testable in isolation.
//   - At-most-once settlement: Outcome transitions Pending to
//     Resolved/Rejected through a single compare-and-swap; every later
//     attempt is a no-op.
//   - No escaping faults: message handlers and gate callbacks never let
//     an error or panic propagate into the transport's dispatch path,
//     which is shared by unrelated in-flight operations. Failures are
//     converted into rejections instead.
//   - No cancellation: an outcome has no cancel operation. It settles
//     by a response, a decode failure, or a synchronous setup failure;
//     deadline policy belongs to the caller's context on Get.
package correlate
