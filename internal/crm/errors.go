package crm

import "errors"

var (
	// ErrUnavailable indicates the CRM endpoint is unreachable.
	ErrUnavailable = errors.New("crm endpoint unavailable")

	// ErrTimeout indicates the CRM request exceeded the configured timeout.
	ErrTimeout = errors.New("crm request timed out")

	// ErrRejected indicates the CRM accepted the connection but refused
	// the lead, for example on a malformed webhook URL.
	ErrRejected = errors.New("crm rejected the lead")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("crm retry attempts exhausted")
)
