package fan

import (
	"strconv"

	"github.com/markusressel/ecfan/internal/ui"
	"github.com/spf13/cobra"
)

var setSpeedCmd = &cobra.Command{
	Use:   "setSpeed",
	Short: "Switch a fan to manual control and set its speed to the given fraction ([0..1])",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		speed, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}

		fan, bank, err := getFan(fanName)
		if err != nil {
			return err
		}

		if err = fan.SetSpeed(speed); err != nil {
			return err
		}
		if err = bank.Commit(); err != nil {
			return err
		}

		ui.Success("Set speed of %s to %.2f", fan.GetName(), speed)
		return nil
	},
}

func init() {
	Command.AddCommand(setSpeedCmd)
}
