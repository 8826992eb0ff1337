package tui

import "github.com/akyairhashvil/fourbyfour/internal/database"

// Store defines the persistence methods the TUI requires.
type Store interface {
	database.Repository
}
