package cmd

import (
	"fmt"

	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, l := range locations {
		if l.clearable {
			clearCmd.Flags().BoolP(l.flag, l.short, false, fmt.Sprintf("clear %s", l.name))
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached responses, history or remembered queries",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared bool

		for _, l := range locations {
			if !l.clearable || !lo.Must(cmd.Flags().GetBool(l.flag)) {
				continue
			}

			cleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), l.name))
			err := util.Delete(l.path())
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), l.name)
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}
