package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"s3audit/config"
	"s3audit/internal/audit"
	"s3audit/internal/models"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// fakeProvider serves canned buckets and public access blocks.
type fakeProvider struct {
	buckets []string
	configs map[string]*models.PublicAccessBlock
	listErr error
	// hang lists buckets whose lookup only returns once ctx is done.
	hang map[string]bool
}

func (f *fakeProvider) ListBuckets(ctx context.Context) ([]models.Bucket, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Bucket
	for _, name := range f.buckets {
		out = append(out, models.Bucket{Name: name})
	}
	return out, nil
}

func (f *fakeProvider) GetPublicAccessBlock(ctx context.Context, bucket string) (*models.PublicAccessBlock, error) {
	if f.hang[bucket] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if c, ok := f.configs[bucket]; ok {
		return c, nil
	}
	return nil, &models.CheckError{Bucket: bucket, Kind: models.FailureAccessDenied, Err: errors.New("Access Denied")}
}

func privateBlock() *models.PublicAccessBlock {
	return &models.PublicAccessBlock{
		BlockPublicAcls:       true,
		IgnorePublicAcls:      true,
		BlockPublicPolicy:     true,
		RestrictPublicBuckets: true,
	}
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command against provider and returns what it
// printed to stdout.
func executeCommand(t *testing.T, provider audit.Provider, stdin string, args ...string) (string, error) {
	t.Helper()

	origProvider := newProvider
	newProvider = func(ctx context.Context, c *config.Config) (audit.Provider, error) {
		return provider, nil
	}
	t.Cleanup(func() {
		newProvider = origProvider
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(append(args, "--log-level", "error"))
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	err := Execute(&config.Config{Region: "us-east-1", LogLevel: "error", Concurrency: 1})

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}
