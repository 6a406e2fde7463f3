// Package wire implements the payload codec for courier exchanges. It
// converts plain Go records to and from the serialized JSON documents
// carried by the pub/sub transport.
//
// Design decisions:
//   - Sparse encoding: a nil pointer field is absent from the wire
//     document; a non-nil pointer to a zero value is encoded. Absence
//     and the zero value are never conflated.
//   - Tolerant decoding: unrecognized keys are ignored, absent keys
//     leave the corresponding field unset, and no field is required.
//   - Strict scalars: a present value with the wrong JSON type is a
//     DecodeError, never a coercion.
//   - Epoch timestamps: time fields travel as numeric epoch seconds and
//     decode from either integer or floating-point representations.
//   - Latched errors: Encoder and Decoder record the first failure and
//     turn the remaining calls into no-ops, so shape codecs read as
//     straight-line field lists.
//
// The codec is pure and stateless; every Encoder and Decoder belongs to
// a single operation invocation and is never shared.
package wire
