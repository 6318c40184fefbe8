package register

import (
	"github.com/markusressel/ecfan/internal"
	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "register",
	Short:            "Raw embedded controller register access",
	Long:             ``,
	TraverseChildren: true,
}

// getBank loads the register bank from the device files in the config
func getBank() (*ec.RegisterBank, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()

	return internal.LoadBank(afero.NewOsFs(), configuration.CurrentConfig.Ec)
}
