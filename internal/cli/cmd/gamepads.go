package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/infrastructure/joystick"
)

var gamepadsCmd = &cobra.Command{
	Use:     "gamepads",
	Aliases: []string{"joysticks"},
	Short:   "List connected gamepads",
	Long: `Scan the joystick device nodes (gamepad.devices, /dev/input/js* by
default) and list the controllers remotenav would use.

Your user needs read access to the device nodes, usually through the
'input' group.`,
	RunE: runGamepads,
}

func init() {
	rootCmd.AddCommand(gamepadsCmd)
}

func runGamepads(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	manager := joystick.NewManager(app.Config.Gamepad.Devices, joystick.XpadMapping())
	defer func() { _ = manager.Close() }()

	if err := manager.Scan(app.Ctx()); err != nil {
		fmt.Println(app.Theme.ErrorStyle.Render(styles.IconX + " " + err.Error()))
		return nil
	}

	devices := manager.Devices()
	if len(devices) == 0 {
		fmt.Println(app.Theme.EmptyState("No gamepad found"))
		return nil
	}

	rows := make([]table.Row, 0, len(devices))
	for i, dev := range devices {
		axes, buttons := dev.Counts()
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			dev.Path(),
			dev.Name(),
			strconv.Itoa(axes),
			strconv.Itoa(buttons),
		})
	}

	fmt.Println(app.Theme.Title.Render(styles.IconGamepad + " Gamepads"))
	fmt.Println(styles.RenderTable(app.Theme, styles.GamepadColumns(), rows))
	if !app.Config.Gamepad.Enabled {
		fmt.Println(app.Theme.WarningStyle.Render(styles.IconWarning + " gamepad input is disabled (gamepad.enabled = false)"))
	}
	return nil
}
