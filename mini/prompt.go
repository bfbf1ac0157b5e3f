package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pokedex-cli/pokedex/color"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/samber/lo"
)

// ask is replaced in tests.
var ask = survey.AskOne

// bind is a menu entry that is not a record.
type bind string

const (
	loadMore bind = "Load more"
	artwork  bind = "Open artwork"
	retry    bind = "Retry"
	back     bind = "Back"
	quit     bind = "Quit"
)

func (b bind) String() string {
	return string(b)
}

// menu asks to pick one of items or one of binds. A zero bind means an item was picked.
func menu[T any](message string, items []T, label func(T) string, binds ...bind) (bind, T, error) {
	var (
		zero   T
		answer int
	)

	options := lo.Map(items, func(item T, _ int) string {
		return style.Truncate(truncateAt)(label(item))
	})
	for _, b := range binds {
		options = append(options, b.String())
	}

	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}

	if err := ask(prompt, &answer); err != nil {
		return "", zero, err
	}

	if answer >= len(items) {
		return binds[answer-len(items)], zero, nil
	}

	return "", items[answer], nil
}

// getInput asks for a line of text until validate accepts it.
func getInput(message string, validate func(string) bool) (string, error) {
	var answer string

	prompt := &survey.Input{Message: message}
	err := ask(prompt, &answer, survey.WithValidator(func(ans interface{}) error {
		if s, ok := ans.(string); ok && validate(s) {
			return nil
		}
		return fmt.Errorf("invalid input")
	}))

	return answer, err
}

func progress(msg string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Fg(color.Blue)(msg)))
}
