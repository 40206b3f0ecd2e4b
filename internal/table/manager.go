package table

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Manager manages multiple tables.
type Manager struct {
	mu     sync.Mutex
	tables map[string]*Table
}

func NewManager() *Manager {
	return &Manager{tables: make(map[string]*Table)}
}

// Create creates a new table and returns its ID.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := generateID()
	m.tables[id] = NewTable(id)
	return id
}

// Get returns a table by ID.
func (m *Manager) Get(id string) *Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tables[id]
}

func generateID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
