package register

import (
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/markusressel/ecfan/internal/util"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write <address> <value>",
	Short: "Write a value to a register and commit the register bank",
	Long:  `Both address and value may be given in hex (0x2f). The whole register image is written to the device.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := util.ParseInt(args[0])
		if err != nil {
			return err
		}
		value, err := util.ParseInt(args[1])
		if err != nil {
			return err
		}

		bank, err := getBank()
		if err != nil {
			return err
		}

		if err = bank.Write(address, value); err != nil {
			return err
		}
		if err = bank.Commit(); err != nil {
			return err
		}

		ui.Success("Wrote %s to register %s", util.HexString(value), util.HexString(address))
		return nil
	},
}

func init() {
	Command.AddCommand(writeCmd)
}
