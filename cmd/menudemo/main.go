// Command menudemo shows a main menu with an options submenu stacked on
// the same screen manager.
package main

import (
	"errors"
	"os"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "menudemo [CONFIG]",
		Short:        "Show a main menu with an options submenu",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runHandler,
	}

	cmd.Flags().String("log-path", "", "Write logs to this file as well as stdout")
	cmd.Flags().String("log-level", "", "Application log level (debug, info, warn, error)")
	cmd.Flags().Bool("fullscreen", false, "Use a fullscreen window")

	return cmd
}

func runHandler(cmd *cobra.Command, args []string) error {
	opts := gamemenu.Options{WindowTitle: "Menu Demo"}
	if len(args) == 1 {
		opts.ConfigPath = args[0]
	}
	opts.LogPath, _ = cmd.Flags().GetString("log-path")
	opts.WindowOptions.Fullscreen, _ = cmd.Flags().GetBool("fullscreen")

	if err := gamemenu.Init(opts); err != nil {
		return err
	}
	defer gamemenu.Close()

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		gamemenu.SetRawLogLevel(level)
	}

	if err := run(); err != nil && !gamemenu.IsCancelled(err) {
		gamemenu.GetLogger().Error("Demo failed", "error", err)
		return err
	}
	return nil
}

func run() error {
	logger := gamemenu.GetLogger()
	host := gamemenu.NewHost()
	screenOpts := gamemenu.ActiveConfig().ScreenOptions()

	difficulty := menu.NewOptionEntry("Difficulty", []string{"Easy", "Normal", "Hard"}, 1)
	difficulty.OnChanged = func(value string, device menu.Device) {
		logger.Info("Difficulty changed", "value", value, "device", device.String())
	}
	sound := menu.NewOptionEntry("Sound", []string{"On", "Off"}, 0)
	sound.OnChanged = func(value string, device menu.Device) {
		logger.Info("Sound changed", "value", value, "device", device.String())
	}

	var optionsScreen *gamemenu.MenuScreen
	options := gamemenu.NewMenu("Options", difficulty, sound, menu.NewEntry("Back", func(menu.Device) {
		optionsScreen.Exit()
	}))

	var mainScreen *gamemenu.MenuScreen
	quit := false
	mainMenu := gamemenu.NewMenu("Main Menu",
		menu.NewEntry("Play", func(device menu.Device) {
			logger.Info("Play selected", "device", device.String())
		}),
		menu.NewEntry("Options", func(menu.Device) {
			s, err := host.OpenMenu(options, screenOpts)
			if err != nil {
				logger.Error("Failed to open options", "error", err)
				return
			}
			optionsScreen = s
		}),
		menu.NewEntry("Quit", func(menu.Device) {
			quit = true
			mainScreen.Exit()
		}),
	)

	s, err := host.PushMenu(mainMenu, screenOpts)
	if err != nil {
		return err
	}
	mainScreen = s

	err = host.Run(nil)
	if errors.Is(err, gamemenu.ErrCancelled) || quit {
		return nil
	}
	return err
}
