package cmd

import (
	"s3audit/internal/audit"
	"s3audit/internal/logger"
	"s3audit/pkg/utils"

	"github.com/spf13/cobra"
)

var bucketStatusCmd = &cobra.Command{
	Use:   "bucket-status BUCKET",
	Short: "Show one bucket's public access block and privacy status",
	Long: `Check a single bucket's public access block configuration.

Unlike the audit report, the output includes the four settings when they could
be read, or the reason they could not (not_configured, access_denied,
no_such_bucket, malformed, transport, canceled, unknown).`,
	Example: `  # Check one bucket
  s3audit bucket-status my-bucket

  # Verbose output
  s3audit bucket-status my-bucket --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBucketStatus(cmd, args[0])
	},
}

func runBucketStatus(cmd *cobra.Command, bucket string) error {
	timeout, _ := cmd.Flags().GetInt("timeout")

	ctx, cancel := withTimeout(cmd.Context(), timeout)
	defer cancel()

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		utils.PrintError(err, "bucket-status")
		return err
	}

	if isVerbose(cmd) {
		cmd.PrintErrf("Getting public access block for: %s\n", bucket)
	}

	auditor := audit.New(provider, audit.WithLogger(*logger.Ctx(ctx)))
	status := auditor.Check(ctx, bucket).Status(bucket)

	if err := utils.PrintJSON(status); err != nil {
		utils.PrintError(err, "bucket-status")
		return err
	}

	if isVerbose(cmd) {
		cmd.PrintErrf("Bucket status retrieved successfully\n")
	}
	return nil
}

func init() {
	bucketStatusCmd.Flags().Int("timeout", 0, "Timeout in seconds for the operation, 0 for none")
}
