package register

import (
	"fmt"

	"github.com/markusressel/ecfan/internal/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <address>",
	Short: "Print the value of a register, the address may be given in hex (0x2f)",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		address, err := util.ParseInt(args[0])
		if err != nil {
			return err
		}

		bank, err := getBank()
		if err != nil {
			return err
		}

		value, err := bank.Read(address)
		if err != nil {
			return err
		}
		fmt.Printf("%d (%s)", value, util.HexString(value))
		return nil
	},
}

func init() {
	Command.AddCommand(readCmd)
}
