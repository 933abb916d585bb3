package note

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/domain/note"
)

// NoteCmd - родительская команда для разовых операций с заметками
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Управление заметками",
	Long:  `Просмотр, создание, обновление и удаление заметок без интерактивной доски.`,
}

// appAndSession достает приложение из контекста команды и запрашивает пользователя
func appAndSession(ctx context.Context) (*client.App, note.Session, error) {
	app, err := types.AppFromContext(ctx)
	if err != nil {
		return nil, note.Session{}, err
	}

	session, err := app.API().GetSession(ctx)
	if err != nil {
		return nil, note.Session{}, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	return app, session, nil
}
