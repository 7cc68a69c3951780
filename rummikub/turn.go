package rummikub

import "fmt"

type MoveKind int

const (
	MoveDraw MoveKind = iota
	MoveCreate
	MoveAdd
	MoveTransfer
	MoveRemove
)

func (k MoveKind) String() string {
	switch k {
	case MoveDraw:
		return "draw"
	case MoveCreate:
		return "create"
	case MoveAdd:
		return "add"
	case MoveTransfer:
		return "move"
	case MoveRemove:
		return "remove"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Move records the intent of a single action within a turn.
// It only references entities by identity; they are resolved against the table when
// the move is applied, which keeps a logged move replayable for undo.
//
// Which fields are used depends on Kind:
//
//	Draw:     Tile
//	Create:   Set (and Tiles when applied through Table.Apply)
//	Add:      Set, Tile, Index
//	Transfer: Origin, Set (the target), Tile, Index
//	Remove:   Set, Tile
type Move struct {
	Kind   MoveKind
	Set    Identifier
	Origin Identifier
	Tile   Identifier
	Tiles  []Identifier
	Index  int

	// filled in by Table.Apply so a transfer can be reverted exactly.
	restore *removal
}

func DrawMove(tileID Identifier) Move {
	return Move{Kind: MoveDraw, Tile: tileID}
}

func CreateMove(setID Identifier) Move {
	return Move{Kind: MoveCreate, Set: setID}
}

// CreateFromRack asks the table to meld the given rack tiles into a new set.
func CreateFromRack(tileIDs ...Identifier) Move {
	return Move{Kind: MoveCreate, Tiles: tileIDs}
}

func AddTileMove(setID, tileID Identifier, index int) Move {
	return Move{Kind: MoveAdd, Set: setID, Tile: tileID, Index: index}
}

func TransferMove(originID, targetID, tileID Identifier, index int) Move {
	return Move{Kind: MoveTransfer, Origin: originID, Set: targetID, Tile: tileID, Index: index}
}

func RemoveMove(setID, tileID Identifier) Move {
	return Move{Kind: MoveRemove, Set: setID, Tile: tileID}
}

func (m Move) IsDraw() bool {
	return m.Kind == MoveDraw
}

func (m Move) IsCreate() bool {
	return m.Kind == MoveCreate
}

func (m Move) String() string {
	switch m.Kind {
	case MoveDraw:
		return fmt.Sprintf("draw %v", m.Tile)
	case MoveCreate:
		return fmt.Sprintf("create %v", m.Set)
	case MoveTransfer:
		return fmt.Sprintf("move %v from %v to %v at %d", m.Tile, m.Origin, m.Set, m.Index)
	default:
		return fmt.Sprintf("%v %v on %v", m.Kind, m.Tile, m.Set)
	}
}

// Turn is the log of moves a player makes during one turn.
// Moves are checked for coarse legality when they are logged; the table validates the
// resulting state when the turn ends.
type Turn struct {
	player *Player
	moves  []Move
}

func NewTurn(p *Player) *Turn {
	return &Turn{player: p, moves: []Move{}}
}

func (t *Turn) Player() *Player {
	return t.player
}

// CanAdd checks whether the move may be logged without logging it.
func (t *Turn) CanAdd(m Move) error {
	// a draw has to be the only move of the turn
	if len(t.moves) > 0 && (m.IsDraw() || t.moves[0].IsDraw()) {
		return fmt.Errorf("%w: drawing ends the turn", ErrTurnIllegalMove)
	}

	// before the opening meld a player can only draw or build new sets
	if !t.player.IsPostMeld && !m.IsCreate() && !m.IsDraw() {
		return fmt.Errorf("%w: %v before the opening meld", ErrTurnIllegalMove, m.Kind)
	}

	if t.player.HasWon() {
		return fmt.Errorf("%w: player has already won", ErrTurnIllegalMove)
	}

	return nil
}

// AddMove checks the move and appends it to the log.
// It does not touch the table; the caller applies the move in the same order.
func (t *Turn) AddMove(m Move) error {
	if err := t.CanAdd(m); err != nil {
		return err
	}
	t.moves = append(t.moves, m)
	return nil
}

// Undo pops the most recent move so it can be reverted.
func (t *Turn) Undo() (Move, bool) {
	if len(t.moves) == 0 {
		return Move{}, false
	}
	m := t.moves[len(t.moves)-1]
	t.moves = t.moves[:len(t.moves)-1]
	return m, true
}

func (t *Turn) Clear() {
	t.moves = t.moves[:0]
}

func (t *Turn) Len() int {
	return len(t.moves)
}

// Moves returns a copy of the log.
func (t *Turn) Moves() []Move {
	return append([]Move(nil), t.moves...)
}
