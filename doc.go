// Package courier is a typed request/response and event-subscription
// correlation layer on top of a topic-based pub/sub transport. A caller
// issues an operation that is realized as: subscribe to the response
// topics, wait for every subscription to be acknowledged, publish the
// request, and resolve a single outcome when a matching response
// arrives. A simpler streaming mode subscribes to event topics with no
// request publication.
//
// Design decisions:
//   - Ack-before-publish: a request is never published before every
//     subscription of its invocation is acknowledged, so a response can
//     never outrun its subscriber.
//   - Independent invocations: concurrent operations share the
//     transport connection but own their gate and outcome exclusively.
//     Two invocations subscribed to the same topic both receive the
//     inbound message and settle their own outcomes.
//   - Errors settle, never escape: every failure inside a transport
//     callback becomes an outcome rejection or a marked stream event;
//     nothing propagates through transport-owned call stacks.
//   - Topic-based routing only: client tokens correlate requests to
//     responses for the caller's benefit, the layer itself routes purely
//     by topic.
//
// The jobs package builds the IoT job-execution service client on top
// of this layer; wire, correlate and transport hold the codec, the
// correlation engine and the connection implementations.
package courier
