package note

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"notekeeper/internal/domain/note"
)

var createContent string

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать заметку",
	Long: `Создает заметку с текстом из флага --content. Без флага текст
читается из стандартного ввода.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		content := createContent
		if !cmd.Flags().Changed("content") {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("ошибка чтения заметки: %w", err)
			}
			content = string(raw)
		}
		if note.Blank(content) {
			return note.ErrEmptyContent
		}

		app, session, err := appAndSession(cmd.Context())
		if err != nil {
			return err
		}

		n := app.NewNote(session, content, time.Now())
		if err := app.API().SaveNote(cmd.Context(), n); err != nil {
			return fmt.Errorf("ошибка сохранения заметки: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Заметка сохранена: %s\n", n.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createContent, "content", "c", "", "текст заметки")
}
