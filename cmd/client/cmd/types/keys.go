package types

import (
	"context"
	"errors"

	"notekeeper/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ, под которым PersistentPreRunE кладет *client.App в контекст команды
const ClientAppKey contextKey = "app"

var ErrNoApp = errors.New("приложение не инициализировано")

func AppFromContext(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
