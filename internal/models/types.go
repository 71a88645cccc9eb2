package models

import "time"

type Bucket struct {
	Name         string
	CreationDate time.Time
}

type PublicAccessBlock struct {
	BlockPublicAcls       bool `json:"BlockPublicAcls"`
	IgnorePublicAcls      bool `json:"IgnorePublicAcls"`
	BlockPublicPolicy     bool `json:"BlockPublicPolicy"`
	RestrictPublicBuckets bool `json:"RestrictPublicBuckets"`
}

// FullyPrivate reports whether every block and restrict setting is enabled.
func (p PublicAccessBlock) FullyPrivate() bool {
	return p.BlockPublicAcls &&
		p.IgnorePublicAcls &&
		p.BlockPublicPolicy &&
		p.RestrictPublicBuckets
}

type AuditEntry struct {
	Bucket       string `json:"bucket"`
	FullyPrivate bool   `json:"fully_private"`

	CreationDate time.Time `json:"-"`
}

// Report holds one entry per listed bucket, in listing order.
type Report []AuditEntry

// PrivateCount returns how many entries are fully private.
func (r Report) PrivateCount() int {
	n := 0
	for _, e := range r {
		if e.FullyPrivate {
			n++
		}
	}
	return n
}

type BucketStatus struct {
	Bucket        string             `json:"bucket"`
	FullyPrivate  bool               `json:"fully_private"`
	Configuration *PublicAccessBlock `json:"configuration,omitempty"`
	Failure       FailureKind        `json:"failure,omitempty"`
	Error         string             `json:"error,omitempty"`
}

type InvocationResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}
