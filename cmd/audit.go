package cmd

import (
	"fmt"
	"s3audit/internal/audit"
	"s3audit/internal/logger"
	"s3audit/internal/models"
	"s3audit/pkg/utils"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report whether every bucket is fully private",
	Long: `List every bucket visible to the configured credentials and check its
public access block configuration.

The command will:
- List all buckets, following continuation tokens unless --single-page is set
- Fetch each bucket's public access block configuration
- Mark a bucket fully private only if all four block/restrict settings are enabled
- Mark a bucket not fully private if its configuration cannot be read
- Print one entry per bucket, in listing order

A failure to list buckets aborts the audit without printing a report.`,
	Example: `  # Audit all buckets
  s3audit audit

  # Human readable table
  s3audit audit --format table

  # Check up to 8 buckets at a time and export metrics
  s3audit audit --concurrency 8 --metrics-file /var/lib/node_exporter/s3audit.prom

  # Exit non-zero when any bucket is not fully private
  s3audit audit --fail-on-public`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd)
	},
}

func runAudit(cmd *cobra.Command) error {
	format, _ := cmd.Flags().GetString("format")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")
	timeout, _ := cmd.Flags().GetInt("timeout")
	failOnPublic, _ := cmd.Flags().GetBool("fail-on-public")

	if format != "json" && format != "table" {
		err := fmt.Errorf("unknown format %q, expected json or table", format)
		utils.PrintError(err, "audit")
		return err
	}
	if !cmd.Flags().Changed("concurrency") {
		concurrency = cfg.Concurrency
	}
	if concurrency < 1 {
		err := fmt.Errorf("concurrency must be greater than 0")
		utils.PrintError(err, "audit")
		return err
	}

	runCfg := *cfg
	if cmd.Flags().Changed("single-page") {
		runCfg.SinglePage, _ = cmd.Flags().GetBool("single-page")
	}

	ctx, cancel := withTimeout(cmd.Context(), timeout)
	defer cancel()

	provider, err := newProvider(ctx, &runCfg)
	if err != nil {
		utils.PrintError(err, "audit")
		return err
	}

	registry := prometheus.NewRegistry()
	auditor := audit.New(provider,
		audit.WithLogger(*logger.Ctx(ctx)),
		audit.WithConcurrency(concurrency),
		audit.WithMetrics(audit.NewMetrics(registry)),
	)

	if isVerbose(cmd) {
		cmd.PrintErrf("Auditing buckets with concurrency %d\n", concurrency)
	}

	report, err := auditor.Audit(ctx)
	if err != nil {
		utils.PrintError(err, "audit")
		return err
	}

	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
			err = fmt.Errorf("failed to write metrics file: %w", err)
			utils.PrintError(err, "audit")
			return err
		}
	}

	if err := printReport(report, format); err != nil {
		utils.PrintError(err, "audit")
		return err
	}

	if failOnPublic {
		if exposed := len(report) - report.PrivateCount(); exposed > 0 {
			return fmt.Errorf("%d bucket(s) not fully private", exposed)
		}
	}
	return nil
}

func printReport(report models.Report, format string) error {
	if format == "table" {
		fmt.Print(utils.RenderReport(report, time.Now()))
		return nil
	}
	return utils.PrintJSON(report)
}

func init() {
	auditCmd.Flags().String("format", "json", "Output format: json or table")
	auditCmd.Flags().Int("concurrency", 1, "Buckets to check at once (default from AUDIT_CONCURRENCY)")
	auditCmd.Flags().Bool("single-page", false, "Only audit the first page of the bucket listing")
	auditCmd.Flags().String("metrics-file", "", "Write prometheus metrics in textfile format to this path")
	auditCmd.Flags().Int("timeout", 0, "Timeout in seconds for the operation, 0 for none")
	auditCmd.Flags().Bool("fail-on-public", false, "Exit non-zero if any bucket is not fully private")
}
