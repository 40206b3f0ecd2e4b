package server

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"cardtable/internal/deck"
	"cardtable/internal/protocol"
	"cardtable/internal/table"
)

// Hub manages the WebSocket connections for one table. All deck
// mutations funnel through the table's lock, so concurrent clients can
// never race an emptiness check against a deal.
type Hub struct {
	mu         sync.Mutex
	tableID    string
	table      *table.Table
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	quit       chan struct{}
}

func NewHub(tableID string, tbl *table.Table) *Hub {
	return &Hub{
		tableID:    tableID,
		table:      tbl,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.broadcastState()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	// The shared table screen is view-only.
	if msg.Client.Type == ClientTable {
		return
	}
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgShuffle:
		h.handleShuffle(msg)
	case protocol.MsgDeal:
		h.handleDeal(msg)
	case protocol.MsgReset:
		h.handleReset(msg)
	default:
		h.sendError(msg.Client, "unknown message type: "+msg.Envelope.Type)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.table.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.broadcastState()
}

func (h *Hub) handleShuffle(msg IncomingMessage) {
	h.table.Shuffle()
	h.broadcastState()
}

func (h *Hub) handleDeal(msg IncomingMessage) {
	c, err := h.table.Deal()
	if err != nil {
		if errors.Is(err, deck.ErrEmptyDeck) {
			h.sendError(msg.Client, "the deck is empty; reset to deal again")
		} else {
			h.sendError(msg.Client, err.Error())
		}
		return
	}

	env := protocol.MustEnvelope(protocol.MsgCardDealt, protocol.CardDealt{
		Card:      c,
		Display:   c.String(),
		DealtTo:   msg.Client.PlayerID,
		Remaining: h.table.CardsRemaining(),
	})
	h.broadcastAll(env)
	h.broadcastState()
}

func (h *Hub) handleReset(msg IncomingMessage) {
	h.table.Reset()
	h.broadcastState()
}

func (h *Hub) broadcastState() {
	players := h.table.GetPlayers()
	tps := make([]protocol.TablePlayer, len(players))
	for i, p := range players {
		tps[i] = protocol.TablePlayer{ID: p.ID, Name: p.Name}
	}
	env := protocol.MustEnvelope(protocol.MsgTableState, protocol.TableState{
		TableID:        h.tableID,
		Players:        tps,
		CardsRemaining: h.table.CardsRemaining(),
		Dealt:          h.table.Dealt(),
	})
	h.broadcastAll(env)
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("broadcast marshal error: %v", err)
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("client %s buffer full", client.PlayerID)
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	env := protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message})
	client.SendEnvelope(env)
}
