package cmd

import (
	"os"

	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a directory or file the pokedex keeps on disk.
type location struct {
	name  string
	flag  string
	short string
	path  func() string
	// clearable locations can be removed by the clear command.
	clearable bool
}

var locations = []location{
	{"Config", "config", "c", where.Config, false},
	{"Logs", "logs", "l", where.Logs, false},
	{"Cache", "cache", "C", where.Cache, true},
	{"History", "history", "H", where.History, true},
	{"Queries", "queries", "q", where.Queries, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.name+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where the pokedex keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range locations {
			if lo.Must(cmd.Flags().GetBool(l.flag)) {
				cmd.Println(l.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiRed).Render
		for i, l := range locations {
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())

			if i < len(locations)-1 {
				cmd.Println()
			}
		}
	},
}
