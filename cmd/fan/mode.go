package fan

import (
	"fmt"
	"strings"

	"github.com/markusressel/ecfan/internal/ec"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get/Set the current control mode of a fan (auto | manual)",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, bank, err := getFan(fanName)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			mode, err := ec.ParseControlMode(strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			if err = fan.SetMode(mode); err != nil {
				return err
			}
			if err = bank.Commit(); err != nil {
				return err
			}
		}

		mode, err := fan.GetMode()
		if err != nil {
			return err
		}

		raw, _ := fan.ModeRegister().Read()
		switch mode {
		case ec.ControlModeManual:
			fmt.Printf("Manual control, gives ecfan control (%d)", raw)
		case ec.ControlModeAuto:
			fmt.Printf("Automatic control by the embedded controller (%d)", raw)
		}

		return nil
	},
}

func init() {
	Command.AddCommand(modeCmd)
}
