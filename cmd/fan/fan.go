package fan

import (
	"github.com/markusressel/ecfan/internal"
	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var fanName string

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().StringVarP(
		&fanName,
		"name", "n",
		"",
		"Fan name as specified in the config",
	)
	_ = Command.MarkPersistentFlagRequired("name")
}

// getFan loads the register bank and returns the fan with the given name, bound to it
func getFan(name string) (*fans.Fan, *ec.RegisterBank, error) {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}

	bank, _, err := internal.InitializeObjects(afero.NewOsFs(), configuration.CurrentConfig)
	if err != nil {
		return nil, nil, err
	}

	fan, err := internal.FindFan(name)
	if err != nil {
		return nil, nil, err
	}
	return fan, bank, nil
}
