package fan

import (
	"bytes"
	"strconv"

	"github.com/markusressel/ecfan/cmd/global"
	"github.com/markusressel/ecfan/internal/ec"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/markusressel/ecfan/internal/util"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the registers of a fan and their current values",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fan, _, err := getFan(fanName)
		if err != nil {
			return err
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

		modeText := "N/A"
		if mode, err := fan.GetMode(); err == nil {
			modeText = mode.String()
		}
		mode := fan.ModeRegister()
		rows := [][]string{
			{"mode", util.HexString(mode.Address), strconv.Itoa(mode.Auto), strconv.Itoa(mode.Manual), readText(mode.Register), modeText},
			boundedRow("temperature", fan.TemperatureRegister()),
		}
		for i, register := range fan.ReadRegisters() {
			rows = append(rows, boundedRow("read "+strconv.Itoa(i+1), register))
		}
		for i, register := range fan.WriteRegisters() {
			rows = append(rows, boundedRow("write "+strconv.Itoa(i+1), register))
		}

		registerTable := table.Table{
			Headers: []string{"Channel", "Register", "Min/Auto", "Max/Manual", "Raw", "Value"},
			Rows:    rows,
		}

		ui.Printfln("> %s", fan.GetName())
		var buf bytes.Buffer
		if err := registerTable.WriteTable(&buf, tableConfig); err != nil {
			return err
		}
		ui.Printfln(buf.String())
		return nil
	},
}

func boundedRow(name string, register *ec.BoundedRegister) []string {
	valueText := "N/A"
	if raw, err := register.Read(); err == nil {
		valueText = strconv.Itoa(fans.MapValue(raw, register.Min, register.Max))
	}
	return []string{
		name, util.HexString(register.Address), strconv.Itoa(register.Min), strconv.Itoa(register.Max), readText(register.Register), valueText,
	}
}

func readText(register ec.Register) string {
	raw, err := register.Read()
	if err != nil {
		return "N/A"
	}
	return strconv.Itoa(raw)
}

func init() {
	Command.AddCommand(infoCmd)
}
