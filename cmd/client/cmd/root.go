// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/config"
	"notekeeper/internal/utils/logger"
)

var (
	cfgFile   string
	serverURL string
	debug     bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "Notekeeper - клиент для заметок",
	Long: `Notekeeper — клиент сервиса заметок.

Загружает заметки пользователя с сервера, позволяет создавать,
редактировать и удалять их. Каждое изменение сразу отправляется на сервер.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		if err := cfg.SetServerURL(serverURL); err != nil {
			return fmt.Errorf("неверный --server: %w", err)
		}
	}
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	// Настраиваем логгер
	log := logger.New(cfg.Env, logger.WithDebug(debug))

	// Создаем приложение
	app, err := client.New(cfg, log, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".notekeeper"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.notekeeper/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера заметок")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "отключить цветной вывод")

	// Команды добавляются в init.go
}
