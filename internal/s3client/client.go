package s3client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	appConfig "s3audit/config"
	"s3audit/internal/models"
)

type Client struct {
	s3Client *s3.Client
	config   *appConfig.Config
}

func New(ctx context.Context, cfg *appConfig.Config) (*Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.HasStaticCredentials() {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(cfg.MaxAttempts))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	return &Client{
		s3Client: s3Client,
		config:   cfg,
	}, nil
}

// ListBuckets returns every bucket owned by the account, following
// continuation tokens unless the config asks for the first page only.
func (c *Client) ListBuckets(ctx context.Context) ([]models.Bucket, error) {
	var buckets []models.Bucket

	paginator := s3.NewListBucketsPaginator(c.s3Client, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list buckets: %w", err)
		}

		for _, bucket := range page.Buckets {
			buckets = append(buckets, toBucket(bucket))
		}

		if c.config.SinglePage {
			break
		}
	}

	return buckets, nil
}

// GetPublicAccessBlock fetches the bucket's public access block. Failures are
// returned as *models.CheckError carrying a classified FailureKind.
func (c *Client) GetPublicAccessBlock(ctx context.Context, bucket string) (*models.PublicAccessBlock, error) {
	resp, err := c.s3Client.GetPublicAccessBlock(ctx, &s3.GetPublicAccessBlockInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, &models.CheckError{Bucket: bucket, Kind: ClassifyError(err), Err: err}
	}

	if resp.PublicAccessBlockConfiguration == nil {
		return nil, &models.CheckError{Bucket: bucket, Kind: models.FailureMalformed}
	}

	return toPublicAccessBlock(resp.PublicAccessBlockConfiguration), nil
}

func toBucket(b types.Bucket) models.Bucket {
	return models.Bucket{
		Name:         aws.ToString(b.Name),
		CreationDate: aws.ToTime(b.CreationDate),
	}
}

// Absent flags count as disabled.
func toPublicAccessBlock(cfg *types.PublicAccessBlockConfiguration) *models.PublicAccessBlock {
	return &models.PublicAccessBlock{
		BlockPublicAcls:       aws.ToBool(cfg.BlockPublicAcls),
		IgnorePublicAcls:      aws.ToBool(cfg.IgnorePublicAcls),
		BlockPublicPolicy:     aws.ToBool(cfg.BlockPublicPolicy),
		RestrictPublicBuckets: aws.ToBool(cfg.RestrictPublicBuckets),
	}
}
