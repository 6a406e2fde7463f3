package correlate

// Kind tags how an inbound message on a route settles the outcome.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindError
)

// Route describes one response topic of a request/response exchange:
// the topic to subscribe to and how a message arriving there settles
// the pending outcome. Exactly one of Accept and Reject is set. Routes
// are immutable and discarded once the subscribe call is issued; the
// decode capability lives on inside the handler returned by Bind.
type Route[T any] struct {
	Topic string

	// Accept decodes a success payload. A decode failure rejects the
	// outcome with the returned error.
	Accept func(payload []byte) (T, error)

	// Reject decodes an error payload. The returned error settles the
	// outcome as rejected whether it is the decoded service rejection
	// or a decode failure; a message on an error route never resolves.
	Reject func(payload []byte) error
}

// Kind reports whether the route carries the success or the error
// variant of the response.
func (r Route[T]) Kind() Kind {
	if r.Reject != nil {
		return KindError
	}
	return KindSuccess
}

// Bind returns the message handler to register with the transport for
// route r. The handler settles o at most once; once the outcome is
// settled, further deliveries on any bound route are no-ops. Panics in
// decode functions are converted into rejections rather than escaping
// into the transport's dispatch goroutine.
func Bind[T any](o *Outcome[T], r Route[T]) func(topic string, payload []byte) {
	return func(_ string, payload []byte) {
		if o.Settled() {
			return
		}
		defer func() {
			if rec := recover(); rec != nil {
				o.Reject(&CallbackError{Recovered: rec})
			}
		}()
		if r.Reject != nil {
			o.Reject(r.Reject(payload))
			return
		}
		value, err := r.Accept(payload)
		if err != nil {
			o.Reject(err)
			return
		}
		o.Resolve(value)
	}
}
