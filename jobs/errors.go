package jobs

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

// RejectedError is the service-level rejection of a request: a message
// that legitimately arrived on a rejected topic and decoded
// successfully. It is distinct from a wire.DecodeError, so callers can
// branch on service rejection versus local decode faults.
type RejectedError struct {
	ClientToken    *string
	Code           *string
	Message        *string
	ExecutionState *JobExecutionState
	Timestamp      *strfmt.DateTime
}

func (e *RejectedError) Error() string {
	code := swag.StringValue(e.Code)
	if code == "" {
		code = "unknown"
	}
	msg := swag.StringValue(e.Message)
	if msg == "" {
		return fmt.Sprintf("jobs: request rejected: %s", code)
	}
	return fmt.Sprintf("jobs: request rejected: %s: %s", code, msg)
}
