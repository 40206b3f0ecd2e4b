package protocol

import "cardtable/internal/deck"

// Message types: Server → Client
const (
	MsgTableState = "table_state"
	MsgCardDealt  = "card_dealt"
	MsgError      = "error"
)

// Message types: Client → Server
const (
	MsgJoin    = "join"
	MsgShuffle = "shuffle"
	MsgDeal    = "deal"
	MsgReset   = "reset"
)

// TableState is broadcast to all clients whenever the table changes.
type TableState struct {
	TableID        string        `json:"table_id"`
	Players        []TablePlayer `json:"players"`
	CardsRemaining int           `json:"cards_remaining"`
	Dealt          []deck.Card   `json:"dealt"`
}

type TablePlayer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CardDealt announces a single deal as it happens.
type CardDealt struct {
	Card      deck.Card `json:"card"`
	Display   string    `json:"display"`
	DealtTo   string    `json:"dealt_to"`
	Remaining int       `json:"remaining"`
}

// JoinMsg is sent by a player to sit down at the table.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
