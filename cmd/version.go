package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}

var versionTemplate = template.Must(template.New("version").Funcs(map[string]any{
	"faint": style.Faint,
	"bold":  style.Bold,
	"red":   style.Fg(color.Red),
}).Parse(`{{ red "▇▇▇" }} {{ red .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Git Commit" }}      {{ bold .Revision }}
  {{ faint "Build Date" }}      {{ bold .BuiltAt }}
  {{ faint "Built By" }}        {{ bold .BuiltBy }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "API" }}             {{ bold .API }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), map[string]string{
			"App":      constant.Pokedex,
			"Version":  constant.Version,
			"Revision": constant.Revision,
			"BuiltAt":  strings.TrimSpace(constant.BuiltAt),
			"BuiltBy":  constant.BuiltBy,
			"OS":       runtime.GOOS,
			"Arch":     runtime.GOARCH,
			"API":      viper.GetString(key.APIBaseURL),
		}))
	},
}
