package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sonicdash/sonic/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sonic version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "sonic %s\n", version.Get())
		return err
	},
}
