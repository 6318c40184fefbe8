package fan

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Get the current value of the temperature register of a fan",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, _, err := getFan(fanName)
		if err != nil {
			return err
		}

		value, err := fan.ReadTemperature()
		if err != nil {
			return err
		}
		fmt.Printf("%d", value)
		return nil
	},
}

func init() {
	Command.AddCommand(tempCmd)
}
