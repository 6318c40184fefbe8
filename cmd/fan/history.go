package fan

import (
	"errors"
	"fmt"
	"os"

	"github.com/markusressel/ecfan/cmd/global"
	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/markusressel/ecfan/internal/persistence"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/markusressel/ecfan/internal/view"
	"github.com/spf13/cobra"
)

var historyStyle string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Draw the recorded temperature and speed history of a fan",
	Long:  `Draws the history recorded by the daemon, followed by the current values.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := view.ParseStyle(historyStyle)
		if err != nil {
			return err
		}

		fan, _, err := getFan(fanName)
		if err != nil {
			return err
		}

		pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
		snapshot, err := pers.LoadHistory(fan.GetName())
		switch {
		case errors.Is(err, os.ErrNotExist):
			ui.Info("No recorded history for %s", fan.GetName())
		case err != nil:
			return err
		default:
			if err = fan.RestoreHistory(snapshot.Temperature, snapshot.Read); err != nil {
				return err
			}
		}

		viewController := view.NewViewController([]*fans.Fan{fan}, style, !global.NoColor)
		output, err := viewController.FanRepresentation(fan)
		if err != nil {
			return err
		}
		fmt.Print(output)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyStyle, "style", "s", string(view.StyleBlocks), "Chart style, one of: blocks | line")
	Command.AddCommand(historyCmd)
}
