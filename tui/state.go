package tui

type state int

const (
	loadingState state = iota
	errorState
	historyState
	listState
	searchState
	typesState
	sortState
	detailsState
)
