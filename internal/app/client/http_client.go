package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/config"
	"notekeeper/internal/domain/note"
)

const (
	pathGetUsername = "/get_username"
	pathGetNotes    = "/get_notes/"
	pathSaveNote    = "/save_note"
	pathUpdateNote  = "/update_note"
	pathDeleteNote  = "/delete_note"

	userAgent = "Notekeeper-Client/1.0"
)

// HTTPClient - слой данных: обращения к backend без какого-либо состояния UI
type HTTPClient struct {
	client *resty.Client
	log    *slog.Logger
}

type saveNoteRequest struct {
	ID      string      `json:"id"`
	UserID  note.UserID `json:"user_id"`
	Content string      `json:"content"`
}

type updateNoteRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type deleteNoteRequest struct {
	ID string `json:"id"`
}

// ackResponse - тело ответа на изменяющие запросы
type ackResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	log = log.With(slog.String("component", "http_client"))

	client := resty.New().
		SetBaseURL(cfg.ServerURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log})

	return &HTTPClient{
		client: client,
		log:    log,
	}
}

// GetSession получает идентификатор и имя текущего пользователя
func (h *HTTPClient) GetSession(ctx context.Context) (note.Session, error) {
	body, err := h.do(ctx, http.MethodGet, pathGetUsername, nil)
	if err != nil {
		return note.Session{}, err
	}

	var session note.Session
	if err := json.Unmarshal(body, &session); err != nil {
		return note.Session{}, fmt.Errorf("%w: %s: %w", ErrDecode, pathGetUsername, err)
	}
	if err := session.Validate(); err != nil {
		return note.Session{}, fmt.Errorf("%w: %s: %w", ErrDecode, pathGetUsername, err)
	}

	return session, nil
}

// ListNotes получает все заметки пользователя в порядке, заданном сервером
func (h *HTTPClient) ListNotes(ctx context.Context, userID note.UserID) ([]note.Note, error) {
	if userID.IsZero() {
		return nil, note.ErrNoSession
	}

	path := pathGetNotes + url.PathEscape(userID.String())
	body, err := h.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var notes []note.Note
	if err := json.Unmarshal(body, &notes); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	for i := range notes {
		notes[i].UserID = userID
	}

	return notes, nil
}

// SaveNote сохраняет новую заметку
func (h *HTTPClient) SaveNote(ctx context.Context, n note.Note) error {
	if n.ID == "" {
		return note.ErrEmptyID
	}
	if n.UserID.IsZero() {
		return note.ErrNoSession
	}
	if n.IsBlank() {
		return note.ErrEmptyContent
	}

	body, err := h.do(ctx, http.MethodPost, pathSaveNote, saveNoteRequest{
		ID:      n.ID,
		UserID:  n.UserID,
		Content: n.Content,
	})
	if err != nil {
		return err
	}

	return h.checkAck(pathSaveNote, body)
}

// UpdateNote заменяет содержимое существующей заметки
func (h *HTTPClient) UpdateNote(ctx context.Context, id, content string) error {
	if id == "" {
		return note.ErrEmptyID
	}
	if note.Blank(content) {
		return note.ErrEmptyContent
	}

	body, err := h.do(ctx, http.MethodPut, pathUpdateNote, updateNoteRequest{
		ID:      id,
		Content: content,
	})
	if err != nil {
		return err
	}

	return h.checkAck(pathUpdateNote, body)
}

// DeleteNote удаляет заметку; nil только при подтверждении сервера
func (h *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return note.ErrEmptyID
	}

	body, err := h.do(ctx, http.MethodDelete, pathDeleteNote, deleteNoteRequest{ID: id})
	if err != nil {
		return err
	}

	return h.checkAck(pathDeleteNote, body)
}

func (h *HTTPClient) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	h.log.Debug("Отправка запроса",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequest, method, path, err)
	}

	h.log.Debug("Получен ответ",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", resp.Time()),
	)

	if !resp.IsSuccess() {
		return nil, &StatusError{
			Method:  method,
			Path:    path,
			Code:    resp.StatusCode(),
			Message: errorMessage(resp.Body()),
		}
	}

	return resp.Body(), nil
}

// checkAck разбирает {"status": ..., "message": ...}. Сервер отвечает 200 со
// статусом "error", например, при удалении несуществующей заметки
func (h *HTTPClient) checkAck(path string, body []byte) error {
	var ack ackResponse
	if len(strings.TrimSpace(string(body))) == 0 || json.Unmarshal(body, &ack) != nil {
		return nil
	}

	switch strings.ToLower(ack.Status) {
	case "error":
		return fmt.Errorf("%w: %s: %s", ErrRejected, path, ack.Message)
	case "info":
		h.log.Info("Сервер вернул уведомление", slog.String("path", path), slog.String("message", ack.Message))
	}

	return nil
}

// restyLogger направляет внутренние сообщения resty в slog
type restyLogger struct {
	log *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
