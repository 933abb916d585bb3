package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notekeeper/cmd/client/cmd/types"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Интерактивная доска заметок",
	Long: `Загружает пользователя и его заметки и открывает интерактивную
оболочку. Команда help выводит список команд.

Новая заметка сохраняется при первом клике мимо нее (click), изменения
существующей - когда она теряет фокус (blur, click по другой заметке).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Start(cmd.Context()); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Заметки не загружены, новые заметки не будут сохранены")
		}

		shell := app.Shell(cmd.InOrStdin())
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			shell.WithoutPrompt()
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "help - список команд")
		}

		return shell.Run(cmd.Context())
	},
}
