package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pokedex-cli/pokedex/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("continue", "c", false, "Start from the recently viewed pokémon")
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Browse the pokédex with plain prompts",
	Long:  `Browse the pokédex through a loop of prompts instead of the full screen interface.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		client, repo := newRepository()
		options := mini.Options{
			Continue:   lo.Must(cmd.Flags().GetBool("continue")),
			Repository: repo,
			Images:     client,
		}

		handleErr(mini.Run(ctx, &options))
	},
}
