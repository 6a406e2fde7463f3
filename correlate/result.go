package correlate

// Result carries one streamed event to a subscriber callback. An event
// that failed to decode is still delivered, with Err set, so the stream
// never skips an index silently.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) IsSuccess() bool {
	return r.Err == nil
}

func (r Result[T]) IsError() bool {
	return r.Err != nil
}
