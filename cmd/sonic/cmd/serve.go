package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sonicdash/sonic/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if addr := strings.TrimSpace(serveAddr); addr != "" {
			cfg.Server.Addr = addr
		}
		return server.Run(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}
