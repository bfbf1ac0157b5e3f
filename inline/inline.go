// Package inline prints pokedex data for scripts, as text or json.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pokedex-cli/pokedex/log"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/viewmodel"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if id, ok := options.Details.Get(); ok {
		return runDetails(ctx, id, options)
	}

	return runList(ctx, options)
}

func runList(ctx context.Context, options *Options) error {
	listOptions := viewmodel.ListOptionsFromConfig()
	listOptions.Debounce = 0

	vm := viewmodel.NewList(options.Repository, listOptions)
	defer vm.Close()

	vm.Init(ctx, options.TypeID)

	// a type list arrives whole
	for page := 1; page < options.Pages && options.TypeID == ""; page++ {
		if s := vm.State(); s.EndReached || s.LoadError != "" {
			break
		}

		log.Debugf("loading page %d", page+1)
		vm.LoadPaginated(ctx)
	}

	vm.SetSearchQuery(options.Query)
	vm.SetSort(options.Sort)

	s := vm.State()
	if s.LoadError != "" {
		return errors.New(s.LoadError)
	}

	if options.Json {
		data, err := asJson(s)
		return writeJson(options.Out, data, err)
	}

	for _, p := range s.Data {
		fmt.Fprintf(options.Out, "%s\t%s\t%s\n", pokemon.DisplayID(p.ID), p.Name, strings.Join(p.Types, ","))
	}

	return nil
}

func runDetails(ctx context.Context, id string, options *Options) error {
	vm := viewmodel.NewDetails(options.Repository, options.Images)
	defer vm.Close()

	// names work as well as ids
	vm.Load(ctx, strings.ToLower(strings.TrimSpace(id)))

	s := vm.State()
	if s.LoadError != "" {
		return errors.New(s.LoadError)
	}

	if options.Json {
		data, err := detailsAsJson(s)
		return writeJson(options.Out, data, err)
	}

	p := s.Pokemon
	fmt.Fprintf(options.Out, "%s %s\n", pokemon.DisplayID(fmt.Sprint(p.ID)), p.Summary())
	fmt.Fprintf(options.Out, "Category: %s\n", p.Category)
	fmt.Fprintf(options.Out, "Types: %s\n", strings.Join(p.Types, ", "))
	fmt.Fprintf(options.Out, "Height: %.1f m\n", p.HeightMetres())
	fmt.Fprintf(options.Out, "Weight: %.1f kg\n", p.WeightKilograms())

	if p.FlavorText != "" {
		fmt.Fprintln(options.Out, p.FlavorText)
	}

	return nil
}
