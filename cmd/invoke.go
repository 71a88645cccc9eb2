package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"s3audit/internal/audit"
	"s3audit/internal/handler"
	"s3audit/internal/logger"
	"s3audit/pkg/utils"

	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run the audit as a single invocation",
	Long: `Run the audit through the invocation entry point and print its response,
{"statusCode": 200, "body": "<serialized report>"}.

The event payload is read from --event (a file path, or - for stdin) and passed
to the handler unchanged. The audit itself does not use it.
If the bucket listing fails no response is printed and the command exits non-zero.`,
	Example: `  # Invoke with no event
  s3audit invoke

  # Invoke with an event read from stdin
  echo '{"source":"aws.events"}' | s3audit invoke --event -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(cmd)
	},
}

func runInvoke(cmd *cobra.Command) error {
	eventPath, _ := cmd.Flags().GetString("event")
	timeout, _ := cmd.Flags().GetInt("timeout")

	event, err := readEvent(cmd, eventPath)
	if err != nil {
		utils.PrintError(err, "invoke")
		return err
	}

	ctx, cancel := withTimeout(cmd.Context(), timeout)
	defer cancel()

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		utils.PrintError(err, "invoke")
		return err
	}

	log := logger.Ctx(ctx)
	h := handler.New(audit.New(provider,
		audit.WithLogger(*log),
		audit.WithConcurrency(cfg.Concurrency),
	), *log)

	resp, err := h.Handle(ctx, event)
	if err != nil {
		utils.PrintError(err, "invoke")
		return err
	}

	return utils.PrintJSON(resp)
}

func readEvent(cmd *cobra.Command, path string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		return nil, nil
	case "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read event: %w", err)
	}
	return json.RawMessage(data), nil
}

func init() {
	invokeCmd.Flags().String("event", "", "Event payload file, or - to read from stdin")
	invokeCmd.Flags().Int("timeout", 0, "Timeout in seconds for the operation, 0 for none")
}
