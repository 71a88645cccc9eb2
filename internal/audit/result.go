package audit

import "s3audit/internal/models"

// CheckResult is either a fetched configuration or a named failure.
type CheckResult struct {
	Config *models.PublicAccessBlock
	Kind   models.FailureKind
	Err    error
}

func (r CheckResult) Failed() bool {
	return r.Config == nil
}

// FullyPrivate fails closed: an unverifiable bucket is not private.
func (r CheckResult) FullyPrivate() bool {
	if r.Failed() {
		return false
	}
	return r.Config.FullyPrivate()
}

func (r CheckResult) Entry(bucket models.Bucket) models.AuditEntry {
	return models.AuditEntry{
		Bucket:       bucket.Name,
		FullyPrivate: r.FullyPrivate(),
		CreationDate: bucket.CreationDate,
	}
}

func (r CheckResult) Status(bucket string) models.BucketStatus {
	status := models.BucketStatus{
		Bucket:        bucket,
		FullyPrivate:  r.FullyPrivate(),
		Configuration: r.Config,
		Failure:       r.Kind,
	}
	if r.Err != nil {
		status.Error = r.Err.Error()
	}
	return status
}
