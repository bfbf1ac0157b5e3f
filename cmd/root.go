// Package cmd implements the pokedex command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/inline"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/network"
	"github.com/pokedex-cli/pokedex/pokeapi"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/tui"
	"github.com/pokedex-cli/pokedex/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant: plain, emoji, kaomoji, squares or nerd")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-history", false, "Do not remember viewed pokémon")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Do not read or write cached API responses")

	rootCmd.Flags().StringP("type", "t", "", "Start with the pokémon of one type")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("type", completionTypes))

	rootCmd.Flags().BoolP("continue", "c", false, "Start from the recently viewed pokémon")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Pokedex,
	Short: "Browse the pokédex from your terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse the pokédex from your terminal"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-history")) {
			viper.Set(key.HistorySave, false)
		}

		if lo.Must(cmd.Flags().GetBool("no-cache")) {
			viper.Set(key.APICache, false)
		}

		network.Setup()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		typeID, err := inline.ParseType(lo.Must(cmd.Flags().GetString("type")))
		handleErr(err)

		client, repo := newRepository()
		options := tui.Options{
			Continue:   lo.Must(cmd.Flags().GetBool("continue")),
			TypeID:     typeID,
			Repository: repo,
			Images:     client,
		}
		handleErr(tui.Run(&options))
	},
}

// newRepository builds the configured client and a repository over it, and
// starts dropping expired artwork in the background.
func newRepository() (*pokeapi.Client, repository.Repository) {
	client := pokeapi.FromConfig()
	client.CollectGarbage()

	return client, repository.New(client, viper.GetInt(key.APIPageSize))
}

func completionTypes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(pokemon.Types, func(t pokemon.Type, _ int) string {
		return t.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiRed + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
