package cmd

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(typesCmd)

	typesCmd.Flags().BoolP("json", "j", false, "Print json instead of text")
	typesCmd.SetOut(os.Stdout)
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the pokémon types and their ids",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(pokemon.Types))
			return
		}

		for _, t := range pokemon.Types {
			tag := style.Tag(style.Base, lipgloss.Color(t.Color))(util.Capitalize(t.Name))
			cmd.Printf("%s %s\n", style.Faint(util.PadLeft(t.ID, 2, ' ')), tag)
		}
	},
}
