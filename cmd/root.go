package cmd

import (
	"context"
	"s3audit/config"
	"s3audit/internal/audit"
	"s3audit/internal/logger"
	"s3audit/internal/s3client"
	"time"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	// newProvider builds the storage provider the commands audit against.
	newProvider = func(ctx context.Context, c *config.Config) (audit.Provider, error) {
		return s3client.New(ctx, c)
	}
)

var rootCmd = &cobra.Command{
	Use:   "s3audit",
	Short: "Audit S3 buckets for public access",
	Long: `s3audit is a command-line tool that checks every S3 bucket in an account
and reports whether each one is fully private, meaning all four public access
block settings are enabled. A bucket whose settings cannot be read is reported
as not fully private.
Configuration is loaded from .env file or environment variables`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(bucketStatusCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := cfg.LogLevel
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	} else if isVerbose(cmd) {
		level = "debug"
	}

	l := logger.Setup(level)
	cmd.SetContext(logger.WithLogger(cmd.Context(), l))
	return nil
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

// withTimeout bounds ctx by seconds when seconds is positive.
func withTimeout(ctx context.Context, seconds int) (context.Context, context.CancelFunc) {
	if seconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(seconds)*time.Second)
}
