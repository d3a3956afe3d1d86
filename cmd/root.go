package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "task-board.com/task-board/internal/configs"
	dto "task-board.com/task-board/internal/data_models"
	apperrors "task-board.com/task-board/internal/errors"
)

type rootOptions struct {
	dbPath   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "task-board",
		Short:         "Task board storage",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "path to the task store (overrides DATABASE_PATH)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newInitDBCmd(opts))

	return cmd
}

func Execute() {
	os.Exit(exitCode(newRootCmd().Execute(), os.Stderr))
}

// exitCode maps a command error to the process exit status. Tagged errors
// have already been reported on stdout as a result envelope; anything else
// (bad flags, bad config) is printed here.
func exitCode(err error, errOut io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	var writeErr *resultWriteError
	if errors.As(err, &writeErr) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return apperrors.ExitStorage
	}

	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return apperrors.ExitCode(err)
	}

	fmt.Fprintf(errOut, "error: %v\n", err)
	return apperrors.ExitInvalidInput
}

// resultWriteError means the result envelope could not be written, so the
// caller never saw the outcome.
type resultWriteError struct {
	err error
}

func (e *resultWriteError) Error() string {
	return fmt.Sprintf("write command result: %v", e.err)
}

func (e *resultWriteError) Unwrap() error {
	return e.err
}

// writeResult reports err on cmd's stdout and returns it, or a
// resultWriteError when stdout itself fails.
func writeResult(cmd *cobra.Command, err error) error {
	if writeErr := dto.NewCommandResult(err).Write(cmd.OutOrStdout()); writeErr != nil {
		return &resultWriteError{err: writeErr}
	}
	return err
}

// loadConfig resolves configuration from .env, the environment and flags,
// in increasing precedence, and configures logging. The returned closer
// may be nil.
func loadConfig(opts *rootOptions) (config.Config, io.Closer, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	if opts.dbPath != "" {
		cfg.DatabasePath = opts.dbPath
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	closer, err := config.SetupLogger(cfg.Logging)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, closer, nil
}
