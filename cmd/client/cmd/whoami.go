package cmd

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Показать текущего пользователя",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		_, err = app.LoadSession(cmd.Context())
		return err
	},
}
