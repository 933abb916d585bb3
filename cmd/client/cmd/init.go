// cmd/client/cmd/init.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"notekeeper/cmd/client/cmd/note"
	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/config"
)

// fileConfig - содержимое ~/.notekeeper/config.yaml
type fileConfig struct {
	AppEnv                string `yaml:"app_env"`
	ServerURL             string `yaml:"server_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	IDScheme              string `yaml:"id_scheme"`
	NoColor               bool   `yaml:"no_color"`
}

func newFileConfig(cfg *config.Config) fileConfig {
	return fileConfig{
		AppEnv:                cfg.Env,
		ServerURL:             cfg.ServerURL,
		RequestTimeoutSeconds: int(cfg.RequestTimeout.Seconds()),
		IDScheme:              cfg.IDScheme,
		NoColor:               cfg.NoColor,
	}
}

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент Notekeeper",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Проверяет соединение с сервером
	2. Сохраняет текущие настройки в ~/.notekeeper/config.yaml

Адрес сервера можно задать флагом --server.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		cfg := app.Config()
		out := cmd.OutOrStdout()

		path := filepath.Join(cfg.ConfigDir, "config.yaml")
		if _, err := os.Stat(path); err == nil && !forceInit {
			fmt.Fprintf(out, "Клиент уже инициализирован: %s (--force для перезаписи)\n", path)
			return nil
		}

		fmt.Fprintln(out, "=== Инициализация Notekeeper ===")

		// Проверяем соединение с сервером
		fmt.Fprintf(out, "Проверка соединения с %s...\n", cfg.ServerURL)
		if session, err := app.API().GetSession(cmd.Context()); err != nil {
			fmt.Fprintf(out, "Предупреждение: не удалось получить пользователя: %v\n", err)
		} else {
			fmt.Fprintf(out, "Соединение установлено, пользователь %s\n", session.Username)
		}

		data, err := yaml.Marshal(newFileConfig(cfg))
		if err != nil {
			return fmt.Errorf("ошибка сериализации конфигурации: %w", err)
		}

		if err := os.MkdirAll(cfg.ConfigDir, 0o700); err != nil {
			return fmt.Errorf("ошибка создания директории %s: %w", cfg.ConfigDir, err)
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("ошибка записи конфигурации: %w", err)
		}

		fmt.Fprintf(out, "Конфигурация сохранена в %s\n", path)
		fmt.Fprintln(out, "Что дальше: notekeeper board")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "перезаписать существующую конфигурацию")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(versionCmd)

	// Добавляем команды работы с заметками
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.UpdateCmd)
	note.NoteCmd.AddCommand(note.DeleteCmd)
}
