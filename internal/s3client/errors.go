package s3client

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"s3audit/internal/models"
)

// ClassifyError maps an S3 error to the reason a privacy check failed.
func ClassifyError(err error) models.FailureKind {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return models.FailureCanceled
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return models.FailureNoSuchBucket
	}

	// Fall back to API error codes for S3-compatible services
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchPublicAccessBlockConfiguration":
			return models.FailureNotConfigured
		case "AccessDenied", "AllAccessDisabled", "Forbidden", "403":
			return models.FailureAccessDenied
		case "NoSuchBucket":
			return models.FailureNoSuchBucket
		}
	}

	var deserErr *smithy.DeserializationError
	if errors.As(err, &deserErr) {
		return models.FailureMalformed
	}

	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return models.FailureTransport
	}

	var respErr interface{ HTTPStatusCode() int }
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusForbidden {
		return models.FailureAccessDenied
	}

	return models.FailureUnknown
}
