package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/board"
	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/note"
)

// App связывает слой данных (HTTPClient) и слой представления (board)
type App struct {
	config   *config.Config
	log      *slog.Logger
	api      *HTTPClient
	ids      note.IDGenerator
	board    *board.Board
	renderer *board.Renderer
	out      io.Writer
}

func New(cfg *config.Config, log *slog.Logger, out io.Writer) (*App, error) {
	ids, err := note.NewIDGenerator(cfg.IDScheme)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации генератора идентификаторов: %w", err)
	}

	// Инициализируем HTTP клиент
	api := NewHTTPClient(cfg, log)

	app := &App{
		config:   cfg,
		log:      log.With(slog.String("component", "app")),
		api:      api,
		ids:      ids,
		board:    board.New(api, log, board.WithIDGenerator(ids)),
		renderer: board.NewRenderer(cfg.NoColor, nil),
		out:      out,
	}

	return app, nil
}

// Start загружает сессию и заметки пользователя и отрисовывает их. Ошибка
// сессии возвращается, но доска остается пригодной к работе без заметок
func (a *App) Start(ctx context.Context) error {
	session, err := a.LoadSession(ctx)
	if err != nil {
		return err
	}

	// Ошибка загрузки заметок только логируется
	_ = a.LoadNotes(ctx, session)

	return nil
}

// LoadSession получает пользователя, запоминает его в доске и выводит приветствие
func (a *App) LoadSession(ctx context.Context) (note.Session, error) {
	session, err := a.api.GetSession(ctx)
	if err != nil {
		a.log.Error("Не удалось получить данные пользователя", slog.String("error", err.Error()))
		return note.Session{}, fmt.Errorf("ошибка получения пользователя: %w", err)
	}

	a.board.SetSession(session)
	a.renderer.Greeting(a.out, session)
	a.log.Debug("Сессия загружена", slog.String("user_id", session.UserID.String()))

	return session, nil
}

// LoadNotes получает заметки пользователя и добавляет карточки на доску
func (a *App) LoadNotes(ctx context.Context, session note.Session) error {
	notes, err := a.api.ListNotes(ctx, session.UserID)
	if err != nil {
		a.log.Error("Не удалось получить заметки", slog.String("error", err.Error()))
		return fmt.Errorf("ошибка получения заметок: %w", err)
	}

	added := a.board.Populate(notes)
	a.renderer.Board(a.out, a.board.Cards())
	a.log.Debug("Заметки загружены", slog.Int("count", added))

	return nil
}

// NewNote собирает заметку для сохранения вне доски (команда note create)
func (a *App) NewNote(session note.Session, content string, now time.Time) note.Note {
	return note.Note{
		ID:        a.ids.NewID(now),
		UserID:    session.UserID,
		Content:   content,
		Timestamp: note.NewTimestamp(now),
	}
}

// Shell создает интерактивную оболочку поверх доски
func (a *App) Shell(in io.Reader) *Shell {
	return NewShell(a.board, a.renderer, in, a.out, a.log)
}

func (a *App) API() *HTTPClient {
	return a.api
}

func (a *App) Board() *board.Board {
	return a.board
}

func (a *App) Renderer() *board.Renderer {
	return a.renderer
}

func (a *App) Config() *config.Config {
	return a.config
}
