package domain

type Table string

const (
	TableTrackerStates Table = "tracker_states"
	TableIndexedTokens Table = "indexed_tokens"
)
