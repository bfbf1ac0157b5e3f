// Package main is the pokedex entry point.
package main

import (
	"github.com/pokedex-cli/pokedex/cmd"
	"github.com/pokedex-cli/pokedex/config"
	"github.com/pokedex-cli/pokedex/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
