// Package audit reduces every bucket in an account to a fully-private flag.
//
// A bucket is fully private only when all four public access block settings
// are enabled. Any failure to read the configuration marks the bucket as not
// fully private; it is never dropped from the report and never aborts the
// audit. Only a failure to list buckets is fatal.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"s3audit/internal/models"
)

// Provider is the storage control plane the auditor queries.
type Provider interface {
	ListBuckets(ctx context.Context) ([]models.Bucket, error)
	GetPublicAccessBlock(ctx context.Context, bucket string) (*models.PublicAccessBlock, error)
}

// Auditor checks every bucket a Provider lists.
type Auditor struct {
	provider    Provider
	logger      zerolog.Logger
	concurrency int
	metrics     *Metrics
}

// Option configures an Auditor.
type Option func(*Auditor)

// WithLogger sets the logger used for per-bucket failures and the summary.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Auditor) { a.logger = l }
}

// WithConcurrency bounds how many buckets are checked at once. Values below 1
// mean sequential.
func WithConcurrency(n int) Option {
	return func(a *Auditor) {
		if n < 1 {
			n = 1
		}
		a.concurrency = n
	}
}

// WithMetrics records checks and audits into m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(a *Auditor) { a.metrics = m }
}

// New returns a sequential Auditor with logging disabled.
func New(provider Provider, opts ...Option) *Auditor {
	a := &Auditor{
		provider:    provider,
		logger:      zerolog.Nop(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Audit lists every bucket and reports whether each one is fully private, in
// listing order.
func (a *Auditor) Audit(ctx context.Context) (models.Report, error) {
	start := time.Now()

	buckets, err := a.provider.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("audit aborted: %w", err)
	}

	a.logger.Debug().Int("buckets", len(buckets)).Int("concurrency", a.concurrency).Msg("checking public access blocks")

	report := make(models.Report, len(buckets))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, bucket := range buckets {
		i, bucket := i, bucket
		g.Go(func() error {
			report[i] = a.Check(ctx, bucket.Name).Entry(bucket)
			return nil
		})
	}
	_ = g.Wait()

	a.metrics.observeAudit(report, time.Since(start))
	a.logger.Info().
		Int("buckets", len(report)).
		Int("fully_private", report.PrivateCount()).
		Dur("elapsed", time.Since(start)).
		Msg("audit complete")

	return report, nil
}

// Check queries one bucket's public access block. Failures come back as a
// failed CheckResult, never as an error.
func (a *Auditor) Check(ctx context.Context, bucket string) CheckResult {
	cfg, err := a.provider.GetPublicAccessBlock(ctx, bucket)
	result := newCheckResult(bucket, cfg, err)

	if result.Failed() {
		a.logger.Warn().
			Str("bucket", bucket).
			Str("reason", string(result.Kind)).
			Err(result.Err).
			Msg("public access block unavailable, treating bucket as not fully private")
	}
	a.metrics.observeCheck(result)

	return result
}

func newCheckResult(bucket string, cfg *models.PublicAccessBlock, err error) CheckResult {
	if err != nil {
		kind := models.FailureUnknown
		var checkErr *models.CheckError
		switch {
		case errors.As(err, &checkErr) && checkErr.Kind != "":
			kind = checkErr.Kind
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			kind = models.FailureCanceled
		}
		return CheckResult{Kind: kind, Err: err}
	}

	if cfg == nil {
		return CheckResult{
			Kind: models.FailureMalformed,
			Err:  &models.CheckError{Bucket: bucket, Kind: models.FailureMalformed},
		}
	}

	return CheckResult{Config: cfg}
}
