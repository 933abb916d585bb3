package note

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"notekeeper/internal/app/client/board"
	"notekeeper/internal/domain/note"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	Long:  `Выводит заметки текущего пользователя в порядке, в котором их вернул сервер.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, session, err := appAndSession(cmd.Context())
		if err != nil {
			return err
		}

		notes, err := app.API().ListNotes(cmd.Context(), session.UserID)
		if err != nil {
			return fmt.Errorf("ошибка получения списка заметок: %w", err)
		}

		return printNotes(cmd.OutOrStdout(), listFormat, notes, app.Renderer())
	},
}

func printNotes(w io.Writer, format string, notes []note.Note, r *board.Renderer) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notesOrEmpty(notes))
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(notesOrEmpty(notes)); err != nil {
			return err
		}
		return encoder.Close()
	case "text", "":
		cards := make([]board.Card, 0, len(notes))
		for i, n := range notes {
			cards = append(cards, board.Card{Key: board.Key(i + 1), Note: n, State: board.StateSaved})
		}
		r.Board(w, cards)
		return nil
	default:
		return fmt.Errorf("неподдерживаемый формат вывода: %s", format)
	}
}

func notesOrEmpty(notes []note.Note) []note.Note {
	if notes == nil {
		return []note.Note{}
	}
	return notes
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "output", "o", "text", "формат вывода (text, json, yaml)")
}
