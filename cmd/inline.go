package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/pokedex-cli/pokedex/filesystem"
	"github.com/pokedex-cli/pokedex/inline"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().IntP("page", "p", 1, "Number of pages of the national dex to load")
	inlineCmd.Flags().StringP("type", "t", "", "List the pokémon of one type, by name or id")
	inlineCmd.Flags().StringP("search", "q", "", "Keep pokémon whose name contains the query or whose number equals it")
	inlineCmd.Flags().StringP("sort", "s", "", "Order by az, heaviest, lightest, tallest or shortest")
	inlineCmd.Flags().StringP("details", "d", "", "Print the details of one pokémon, by number or name")
	inlineCmd.Flags().BoolP("json", "j", false, "Print json instead of text")
	inlineCmd.Flags().BoolP("theme", "T", false, "Include the artwork colors in json details")
	inlineCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	inlineCmd.MarkFlagsMutuallyExclusive("details", "type")
	inlineCmd.MarkFlagsMutuallyExclusive("details", "search")
	inlineCmd.MarkFlagsMutuallyExclusive("type", "page")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("type", completionTypes))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("search", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"az", "heaviest", "lightest", "tallest", "shortest"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Print pokédex data for scripts",
	Long: `Print a page, a type or a search of the pokédex, or the details of one pokémon, without any interface.

Text output has one tab separated line per pokémon: number, name and types.
The json output is described by "inline schema".`,
	Example: `  pokedex inline --page 2 --sort heaviest
  pokedex inline --type fire --json
  pokedex inline --search char
  pokedex inline --details pikachu --json --theme`,
	Run: func(cmd *cobra.Command, args []string) {
		typeID, err := inline.ParseType(lo.Must(cmd.Flags().GetString("type")))
		handleErr(err)

		sort, err := inline.ParseSort(lo.Must(cmd.Flags().GetString("sort")))
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		client, repo := newRepository()
		options := &inline.Options{
			Out:        writer,
			Repository: repo,
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Pages:      lo.Must(cmd.Flags().GetInt("page")),
			TypeID:     typeID,
			Query:      lo.Must(cmd.Flags().GetString("search")),
			Sort:       sort,
			Details:    mo.EmptyableToOption(lo.Must(cmd.Flags().GetString("details"))),
		}

		if lo.Must(cmd.Flags().GetBool("theme")) {
			options.Images = client
		}

		timeout := time.Duration(viper.GetInt(key.APITimeoutSeconds)) * time.Second * time.Duration(lo.Max([]int{options.Pages, 1})+1)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		handleErr(inline.Run(ctx, options))

		if options.Query != "" {
			if err := query.Remember(options.Query, 1); err != nil {
				log.Warnf("remembering query: %s", err)
			}
		}
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("details", "d", false, "Describe the details output instead of the list output")
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the json schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		schema := inline.Schema(lo.Must(cmd.Flags().GetBool("details")))
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
