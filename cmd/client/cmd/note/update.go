package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/domain/note"
)

var updateContent string

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить текст заметки",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if note.Blank(updateContent) {
			return note.ErrEmptyContent
		}

		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.API().UpdateNote(cmd.Context(), args[0], updateContent); err != nil {
			return fmt.Errorf("ошибка обновления заметки: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Заметка обновлена: %s\n", args[0])
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateContent, "content", "c", "", "новый текст заметки")
	_ = UpdateCmd.MarkFlagRequired("content")
}
