package models

import "fmt"

// FailureKind names why a bucket's public access block could not be verified.
type FailureKind string

const (
	FailureNotConfigured FailureKind = "not_configured"
	FailureAccessDenied  FailureKind = "access_denied"
	FailureNoSuchBucket  FailureKind = "no_such_bucket"
	FailureMalformed     FailureKind = "malformed"
	FailureTransport     FailureKind = "transport"
	FailureCanceled      FailureKind = "canceled"
	FailureUnknown       FailureKind = "unknown"
)

// FailureKinds lists every kind, in a stable order.
var FailureKinds = []FailureKind{
	FailureNotConfigured,
	FailureAccessDenied,
	FailureNoSuchBucket,
	FailureMalformed,
	FailureTransport,
	FailureCanceled,
	FailureUnknown,
}

// CheckError is returned by a provider when a bucket's public access block
// query fails.
type CheckError struct {
	Bucket string
	Kind   FailureKind
	Err    error
}

func (e *CheckError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("public access block for bucket %s: %s", e.Bucket, e.Kind)
	}
	return fmt.Sprintf("public access block for bucket %s: %s: %v", e.Bucket, e.Kind, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}
