package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/cli/styles"
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Manage remembered focus per screen",
	Long: `Focus memory restores the last focused element when a screen is
revisited. It is stored in SQLite and can be turned off with
database.remember_focus = false.`,
	RunE: runMemoryList,
}

var memoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List remembered screens",
	RunE:    runMemoryList,
}

var memoryForgetCmd = &cobra.Command{
	Use:   "forget <screen>",
	Short: "Forget the focus of one screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoryForget,
}

var memoryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every remembered screen",
	RunE:  runMemoryClear,
}

var memoryResetHintCmd = &cobra.Command{
	Use:   "reset-hint",
	Short: "Show the remote key hint again on next start",
	RunE:  runMemoryResetHint,
}

func init() {
	rootCmd.AddCommand(memoryCmd)
	memoryCmd.AddCommand(memoryListCmd, memoryForgetCmd, memoryClearCmd, memoryResetHintCmd)
}

func runMemoryList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	memories, err := app.Memory.GetAll(app.Ctx())
	if err != nil {
		return fmt.Errorf("load focus memory: %w", err)
	}
	if len(memories) == 0 {
		fmt.Println(app.Theme.EmptyState("No remembered focus"))
		return nil
	}

	rows := make([]table.Row, 0, len(memories))
	for _, m := range memories {
		rows = append(rows, table.Row{m.Screen, m.Key, styles.RelativeTime(m.UpdatedAt)})
	}
	// GetAll returns the most recent entry first.
	fmt.Println(app.Theme.Title.Render(styles.IconDatabase+" Focus memory") + "  " +
		app.Theme.AccentBadge(fmt.Sprintf("%d screens", len(memories))) + " " +
		app.Theme.TimeBadge(memories[0].UpdatedAt))
	fmt.Println(styles.RenderTable(app.Theme, styles.FocusMemoryColumns(), rows))
	if !app.Config.Database.RememberFocus {
		fmt.Println(app.Theme.WarningStyle.Render(styles.IconWarning + " focus memory is disabled (database.remember_focus = false)"))
	}
	return nil
}

func runMemoryForget(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Memory.Delete(app.Ctx(), args[0]); err != nil {
		return fmt.Errorf("forget %s: %w", args[0], err)
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck + " Forgot focus of " + args[0]))
	return nil
}

func runMemoryClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Memory.Clear(app.Ctx()); err != nil {
		return fmt.Errorf("clear focus memory: %w", err)
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck + " Focus memory cleared"))
	return nil
}

func runMemoryResetHint(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Hints.ResetHint(app.Ctx()); err != nil {
		return fmt.Errorf("reset hint: %w", err)
	}
	fmt.Println(app.Theme.SuccessStyle.Render(styles.IconCheck + " Key hint will be shown again"))
	return nil
}
