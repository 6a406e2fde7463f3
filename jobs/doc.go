// Package jobs is the device-side client for the IoT job-execution
// service, built on the courier correlation layer. Every operation is a
// topic-based exchange: the client subscribes to the accepted and
// rejected response topics, publishes the request once both
// subscriptions are acknowledged, and hands back a pending outcome.
// The notify topics are exposed as streaming subscriptions instead.
//
// Requests and responses are plain records with pointer-typed optional
// fields; a nil field is absent from the wire payload and a field that
// is absent in a response stays nil. Timestamps travel as epoch
// seconds. Client tokens are generated when the caller does not supply
// one, so concurrent requests of the same shape remain tellable apart.
package jobs
