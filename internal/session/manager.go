package session

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"jungle/internal/jungle"
)

// Manager keeps the games of one process in memory.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Game)}
}

// NewGame starts a game from the standard position.
func (m *Manager) NewGame() *Game {
	return m.Add(jungle.NewBoard())
}

// Add registers a game around an existing board, e.g. one decoded from notation.
func (m *Manager) Add(b *jungle.Board) *Game {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := newGame(uuid.NewString(), b)
	m.games[g.ID] = g
	log.Debug().Str("game", g.ID).Str("position", b.Encode()).Msg("game-created")
	return g
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Find resolves a full id or a unique id prefix.
func (m *Manager) Find(prefix string) (*Game, error) {
	if g, err := m.Get(prefix); err == nil {
		return g, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var found *Game
	for id, g := range m.games {
		if prefix == "" || !strings.HasPrefix(id, prefix) {
			continue
		}
		if found != nil {
			return nil, ErrGameNotFound
		}
		found = g
	}
	if found == nil {
		return nil, ErrGameNotFound
	}
	return found, nil
}

// List returns all games, oldest first.
func (m *Manager) List() []*Game {
	m.mu.RLock()
	games := lo.Values(m.games)
	m.mu.RUnlock()

	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	return games
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}
