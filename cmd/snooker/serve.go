package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snooker/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoreboard SSH server",
	Long: `Start an SSH server that gives every connection its own scoreboard.

Each SSH connection scores its own frame; nothing is shared between
sessions except the saved frames database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snooker/host_key

Examples:
  snooker serve                           # Listen on :23234 with auto-generated key
  snooker serve --ssh :2222               # Listen on port 2222
  snooker serve --host-key ./my_host_key  # Use specific host key
  snooker serve --db ./frames.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	level, err := cfg.Log.LogLevel()
	if err != nil {
		return err
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = cfg.Server.Address
	serverCfg.HostKeyPath = cfg.Server.HostKeyPath
	serverCfg.DBPath = cfg.Storage.DBPath
	serverCfg.Names = cfg.Names()
	serverCfg.LogLevel = level
	if timeout := cfg.Server.IdleTimeout(); timeout > 0 {
		serverCfg.IdleTimeout = timeout
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting snooker SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
