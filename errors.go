package courier

import "fmt"

// PublishError wraps a synchronous publish failure that occurred after
// full subscription acknowledgement. It settles the pending outcome as
// rejected.
type PublishError struct {
	Topic string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("courier: publish to %s failed: %v", e.Topic, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}
