package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/pokedex-cli/pokedex/internal/ui"
	"github.com/pokedex-cli/pokedex/key"
	"github.com/pokedex-cli/pokedex/pokemon"
	"github.com/pokedex-cli/pokedex/repository"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
	"github.com/pokedex-cli/pokedex/viewmodel"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// listSession is the list view model of the current list screen and its subscription.
type listSession struct {
	vm          *viewmodel.ListViewModel
	states      <-chan viewmodel.ListState
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
}

// detailsSession is the same for the details screen.
type detailsSession struct {
	vm          *viewmodel.DetailsViewModel
	states      <-chan viewmodel.DetailsState
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
}

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	historyC list.Model
	pokemonC list.Model
	typesC   list.Model
	sortC    list.Model
	helpC    help.Model

	repo   repository.Repository
	images viewmodel.ImageLoader

	list         *listSession
	shownList    viewmodel.ListState
	details      *detailsSession
	shownDetails viewmodel.DetailsState

	progressStatus string
	lastError      error
	// errorOrigin is the screen a retry goes back to.
	errorOrigin state

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.errorOrigin = b.state
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current screen unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.historyC, &b.typesC, &b.sortC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	// one line is reserved for the search input
	b.pokemonC.SetSize(listWidth, listHeight-1)
	b.pokemonC.Help.Width = listWidth

	b.inputC.Width = listWidth
	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		repo:          options.Repository,
		notifier:      &ui.Model{},
		options:       options,
	}

	if viper.GetBool(key.TUIThemeFromArtwork) {
		bubble.images = options.Images
	}

	makeList := func(title string, description bool, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.Red)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Search by name or number"
	bubble.inputC.CharLimit = 40
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPrompt)

	bubble.pokemonC = makeList("Pokédex", true, style.Red)
	bubble.pokemonC.SetStatusBarItemName("pokémon", "pokémon")

	bubble.historyC = makeList("Recently Viewed", true, style.Yellow)
	bubble.historyC.SetStatusBarItemName("entry", "entries")

	bubble.typesC = makeList("Types", false, style.Lavender)
	typeItems := []list.Item{&listItem{internal: allTypes}}
	for _, t := range pokemon.Types {
		typeItems = append(typeItems, &listItem{internal: t})
	}
	bubble.typesC.SetItems(typeItems)

	bubble.sortC = makeList("Sort By", false, style.Peach)
	bubble.sortC.SetItems(lo.Map(pokemon.Sorts, func(s pokemon.Sort, _ int) list.Item {
		return &listItem{internal: s}
	}))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
