package domain

import (
	"fmt"
	"strings"
)

// State identifies a machine state. States are plain integers; there is no
// separate state entity.
type State int

// StartState is the state every run begins in.
const StartState State = 0

// DefaultHead is the initial head position. Index 0 is conventionally
// reserved for the left sentinel symbol.
const DefaultHead = 1

// Symbol is a single tape cell value. Any byte is a legal symbol.
type Symbol byte

// String renders the symbol as a Go-quoted character, e.g. '#'.
func (s Symbol) String() string {
	return fmt.Sprintf("%q", rune(s))
}

// Move is the head displacement applied after a write.
type Move int

const (
	Left  Move = -1
	Hold  Move = 0
	Right Move = 1
)

// String returns the single-letter mnemonic of the move.
func (m Move) String() string {
	switch m {
	case Left:
		return "L"
	case Right:
		return "R"
	case Hold:
		return "H"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Valid reports whether m is one of Left, Hold or Right.
func (m Move) Valid() bool {
	return m == Left || m == Hold || m == Right
}

// ParseMove converts a textual move into a Move.
// It accepts L/R/H, left/right/hold, stay, '<', '>' and '-' (case-insensitive).
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left", "<":
		return Left, nil
	case "r", "right", ">":
		return Right, nil
	case "h", "hold", "stay", "-", "n", "none":
		return Hold, nil
	}
	return Hold, fmt.Errorf("invalid move %q (expected L, R or H)", s)
}
