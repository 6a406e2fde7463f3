package wire

import "fmt"

// DecodeError reports an inbound payload that could not be decoded into
// the expected shape. It settles a pending outcome as rejected in
// request/response mode and travels as the undecodable marker in
// streaming mode.
type DecodeError struct {
	Path   string // JSON path of the offending value, empty for the document root
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("wire: cannot decode payload: %s", e.Reason)
	}
	return fmt.Sprintf("wire: cannot decode %q: %s", e.Path, e.Reason)
}
