// Command handoffctl is the terminal client of the handoff API.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"handoff/config"
	"handoff/internal/client"
	logs "handoff/internal/infra/log"
	"handoff/internal/infra/httpclient"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

var (
	server   string
	token    string
	timeout  time.Duration
	logFile  string
	logLevel string

	logger  *slog.Logger
	logSink io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "handoffctl",
	Short:         "Choose where an exchanged item changes hands",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logSink != nil {
			_ = logSink.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&server, "server", envOr("HANDOFF_SERVER", defaultServer), "API base URL (or set HANDOFF_SERVER)")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("HANDOFF_TOKEN"), "Bearer access token (or set HANDOFF_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Per-request timeout")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file; logs are dropped when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(addressesCmd)
	rootCmd.AddCommand(deliveryCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setupLogger keeps log lines off the terminal, which belongs to the picker.
func setupLogger() error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		w = f
		logSink = f
	}

	cfg := &config.Config{}
	cfg.Env.ServiceName = "handoffctl"
	cfg.Env.Log.Level = logLevel

	l, err := logs.Build(w, cfg)
	if err != nil {
		return err
	}
	logger = l

	return nil
}

func newClient() (*client.Client, error) {
	if token == "" {
		return nil, errors.New("an access token is required: pass --token or set HANDOFF_TOKEN")
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = timeout

	return client.New(client.Options{BaseURL: server, Token: token, HTTP: httpCfg})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
