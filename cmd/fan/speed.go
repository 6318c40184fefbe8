package fan

import (
	"fmt"

	"github.com/markusressel/ecfan/internal/fans"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Get the current value of each speed sensor of a fan",
	Long:  `Prints one line per speed sensor: the raw register value and the value normalized to [0..50]`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, _, err := getFan(fanName)
		if err != nil {
			return err
		}

		speeds, err := fan.ReadSpeeds()
		if err != nil {
			return err
		}

		for i, register := range fan.ReadRegisters() {
			fmt.Printf("%d %d\n", speeds[i], fans.MapValue(speeds[i], register.Min, register.Max))
		}
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
