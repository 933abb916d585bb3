package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version задается при сборке: -ldflags "-X notekeeper/cmd/client/cmd.Version=..."
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Показать версию клиента",
	// Версии не нужны конфигурация и сервер
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notekeeper %s\n", Version)
	},
}
