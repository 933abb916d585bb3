package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.API().DeleteNote(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления заметки: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Заметка удалена: %s\n", args[0])
		return nil
	},
}
