package register

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/markusressel/ecfan/cmd/global"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/markusressel/ecfan/internal/util"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

const bytesPerRow = 16

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print all registers, or save the register image to a file",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := getBank()
		if err != nil {
			return err
		}

		if len(args) > 0 {
			if err = bank.Dump(args[0]); err != nil {
				return err
			}
			ui.Success("Saved %d registers to %s", bank.Len(), args[0])
			return nil
		}

		tableConfig := &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		}

		dumpTable := table.Table{
			Headers: dumpHeaders(),
			Rows:    dumpRows(bank.Bytes()),
		}

		var buf bytes.Buffer
		if err := dumpTable.WriteTable(&buf, tableConfig); err != nil {
			return err
		}
		ui.Printfln(buf.String())
		return nil
	},
}

func dumpHeaders() []string {
	headers := []string{""}
	for i := 0; i < bytesPerRow; i++ {
		headers = append(headers, fmt.Sprintf("%X", i))
	}
	return headers
}

func dumpRows(image []byte) [][]string {
	var rows [][]string
	for offset := 0; offset < len(image); offset += bytesPerRow {
		row := []string{util.HexString(offset)}
		for i := offset; i < offset+bytesPerRow && i < len(image); i++ {
			row = append(row, strconv.FormatUint(uint64(image[i]), 16))
		}
		rows = append(rows, row)
	}
	return rows
}

func init() {
	Command.AddCommand(dumpCmd)
}
