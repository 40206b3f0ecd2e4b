package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	qr "cardtable/internal/qrcode"
	"cardtable/internal/table"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	TableMgr *table.Manager
	Hubs     map[string]*Hub
	Port     int
}

func NewHandlers(port int) *Handlers {
	return &Handlers{
		TableMgr: table.NewManager(),
		Hubs:     make(map[string]*Hub),
		Port:     port,
	}
}

// HandleCreateTable creates a new table and redirects to its shared view.
func (h *Handlers) HandleCreateTable(w http.ResponseWriter, r *http.Request) {
	tableID := h.TableMgr.Create()
	tbl := h.TableMgr.Get(tableID)
	hub := NewHub(tableID, tbl)
	h.Hubs[tableID] = hub
	go hub.Run()

	http.Redirect(w, r, fmt.Sprintf("/table.html?table=%s", tableID), http.StatusSeeOther)
}

// HandleQR generates a QR code PNG for joining the table from a phone.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}
	host := r.Host
	url := fmt.Sprintf("http://%s/hand.html?table=%s", host, tableID)
	png, err := qr.Generate(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "table" or "player"

	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}
	hub, ok := h.Hubs[tableID]
	if !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	ct := ClientPlayer
	if clientType == "table" {
		ct = ClientTable
	}

	client := NewClient(hub, conn, playerID, ct)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	id := GeneratePlayerID()
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(id))
}
