package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/ecfan/cmd/config"
	"github.com/markusressel/ecfan/cmd/fan"
	"github.com/markusressel/ecfan/cmd/global"
	"github.com/markusressel/ecfan/cmd/register"
	"github.com/markusressel/ecfan/internal"
	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/markusressel/ecfan/internal/view"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	noView    bool
	viewStyle string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ecfan",
	Short: "A daemon to monitor and control fans driven by an embedded controller.",
	Long: `ecfan mirrors the register bank of an embedded controller,
records temperature and fan speed histories and draws them as charts.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		style, err := view.ParseStyle(viewStyle)
		if err != nil {
			ui.FatalWithoutStacktrace("%v", err)
		}

		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		err = configuration.Validate()
		if err != nil {
			ui.ErrorAndNotify("Config Validation Error", err.Error())
			return
		}

		internal.RunDaemon(internal.DaemonOptions{
			LiveView: !noView,
			Style:    style,
			Color:    !global.NoColor,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/ecfan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.Flags().BoolVarP(&noView, "no-view", "", false, "Do not draw the fan history charts")
	rootCmd.Flags().StringVarP(&viewStyle, "style", "s", string(view.StyleBlocks), "Chart style, one of: blocks | line")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(register.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("ec", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("ecfan")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
