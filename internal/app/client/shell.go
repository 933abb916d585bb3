package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/client/board"
)

const prompt = "> "

var (
	errUsage     = errors.New("неверные аргументы")
	errBadIndex  = errors.New("нет заметки с таким номером")
	errNoFocus   = errors.New("нет заметки в режиме редактирования")
	errUnknownOp = errors.New("неизвестная команда")
)

const shellHelp = `Команды:
  new [текст]          создать заметку
  edit <n> <текст>     заменить текст заметки n
  focus <n>            начать редактирование заметки n
  type <текст>         заменить текст редактируемой заметки
  blur                 закончить редактирование
  click [n]            клик по заметке n или мимо всех заметок
  rm <n>               удалить заметку n
  ls                   показать заметки
  help                 эта справка
  quit, exit           выйти`

// Shell построчно переводит команды пользователя в события доски
type Shell struct {
	board    *board.Board
	renderer *board.Renderer
	in       io.Reader
	out      io.Writer
	log      *slog.Logger
	prompt   bool
}

func NewShell(b *board.Board, r *board.Renderer, in io.Reader, out io.Writer, log *slog.Logger) *Shell {
	return &Shell{
		board:    b,
		renderer: r,
		in:       in,
		out:      out,
		log:      log.With(slog.String("component", "shell")),
		prompt:   true,
	}
}

// WithoutPrompt отключает вывод приглашения (ввод не с терминала)
func (s *Shell) WithoutPrompt() *Shell {
	s.prompt = false
	return s
}

// Run читает команды до quit, EOF или отмены контекста. Перед выходом
// дожидается завершения всех запросов к серверу
func (s *Shell) Run(ctx context.Context) error {
	defer s.board.Wait()

	scanner := bufio.NewScanner(s.in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		if s.prompt {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		quit, err := s.Exec(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "Ошибка: %v\n", err)
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ошибка чтения команд: %w", err)
	}
	return nil
}

// Exec выполняет одну команду. Возвращает true, если пользователь хочет выйти
func (s *Shell) Exec(ctx context.Context, line string) (bool, error) {
	name, rest := splitCommand(line)

	switch name {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, shellHelp)
		return false, nil
	case "ls":
		s.renderer.Board(s.out, s.board.Cards())
		return false, nil
	case "new":
		key := s.board.Create(ctx)
		if rest != "" {
			if err := s.board.Type(key, rest); err != nil {
				return false, err
			}
		}
		s.log.Debug("Создана заметка", slog.Int("key", int(key)))
		return false, nil
	case "edit":
		idx, text := splitCommand(rest)
		key, err := s.resolve(idx)
		if err != nil {
			return false, err
		}
		if err := s.board.Click(ctx, key); err != nil {
			return false, err
		}
		return false, s.board.Type(key, text)
	case "focus":
		key, err := s.resolve(rest)
		if err != nil {
			return false, err
		}
		return false, s.board.Click(ctx, key)
	case "type":
		key := s.board.Focused()
		if key == board.Background {
			return false, errNoFocus
		}
		return false, s.board.Type(key, rest)
	case "blur":
		s.board.Blur(ctx)
		return false, nil
	case "click":
		if rest == "" {
			return false, s.board.Click(ctx, board.Background)
		}
		key, err := s.resolve(rest)
		if err != nil {
			return false, err
		}
		return false, s.board.Click(ctx, key)
	case "rm":
		key, err := s.resolve(rest)
		if err != nil {
			return false, err
		}
		return false, s.board.Delete(ctx, key)
	default:
		return false, fmt.Errorf("%w: %s (help - список команд)", errUnknownOp, name)
	}
}

// resolve переводит номер заметки в выводе ls в ключ карточки
func (s *Shell) resolve(arg string) (board.Key, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return board.Background, fmt.Errorf("%w: нужен номер заметки", errUsage)
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return board.Background, fmt.Errorf("%w: %q не номер", errUsage, arg)
	}

	cards := s.board.Cards()
	if n < 1 || n > len(cards) {
		return board.Background, fmt.Errorf("%w: %d", errBadIndex, n)
	}
	return cards[n-1].Key, nil
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	name, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(rest)
}
