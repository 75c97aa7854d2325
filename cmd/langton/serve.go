package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/langton/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve <rows> <columns> <turns> [seed]",
	Short: "Start the langton SSH server",
	Long: `Start an SSH server that animates a run for every connection.

Each session gets its own start position unless a seed is given, in which
case every session watches the same run.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key from the config
  - Otherwise, auto-generates a key at ~/.langton/host_key

Examples:
  langton serve 20 40 1000                     # Listen on :23235
  langton serve --ssh :2222 20 40 1000         # Listen on port 2222
  langton serve --host-key ./key 20 40 1000 7  # Specific key, fixed seed

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.ArbitraryArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes (default from config, 0 disables)")
}

func runServe(_ *cobra.Command, args []string) {
	rs := mustParseSettings(args)
	display := mustLoadConfig()

	cfg := tui.SSHServerConfig{
		Address:     display.Server.Address,
		HostKeyPath: display.Server.HostKey,
		IdleTimeout: display.IdleTimeout(),
		Settings:    rs,
		Display:     display,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	serverLogger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "langton-ssh",
		Level:           logger.GetLevel(),
	})
	if serverLogger.GetLevel() > log.InfoLevel {
		serverLogger.SetLevel(log.InfoLevel)
	}

	server, err := tui.NewSSHServer(cfg, serverLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting langton SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
