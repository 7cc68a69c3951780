package rummikub

// SetError reports a violated structural invariant of a Set.
type SetError string

func (e SetError) Error() string { return string(e) }

// TileError reports a tile whose value and color do not fit together.
type TileError string

func (e TileError) Error() string { return string(e) }

// TableError reports a failed precondition of a table operation.
type TableError string

func (e TableError) Error() string { return string(e) }

// TurnError reports a move that cannot be logged in the current turn.
type TurnError string

func (e TurnError) Error() string { return string(e) }

// outcomes of classifying a set
const (
	ErrMinLength   SetError = "set contains fewer than 3 tiles"
	ErrMaxLength   SetError = "set contains too many tiles"
	ErrBadTile     SetError = "set contains a tile that does not fit"
	ErrOutOfBounds SetError = "index is out of bounds"
)

const ErrIllegalTile TileError = "tile value does not match its color"

// outcomes of table operations
const (
	ErrPoolEmpty     TableError = "pool is empty"
	ErrWrongTurn     TableError = "it is not this player's turn"
	ErrUnknownSet    TableError = "set is not on the table"
	ErrMissingTile   TableError = "tile was not found"
	ErrIllegalMove   TableError = "move is illegal"
	ErrMeldThreshold TableError = "first meld does not exceed the minimum value"
	ErrUnsupported   TableError = "undoing this move is not supported"
)

const ErrTurnIllegalMove TurnError = "move is not allowed in this turn"
