package rummikub

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Table holds the players, the pool and the sets melded so far.
// It is not safe for concurrent use; hosts serialize access per table.
type Table struct {
	players [SeatCount]*Player

	// the tiles that have not been dealt or drawn yet.
	pool []Tile

	sets map[Identifier]*Set

	// registration order of the sets, for deterministic iteration.
	order []Identifier

	rules  Rules
	source Source

	// the logger with several pre-populated fields
	logSink *logrus.Entry
}

// removal describes where a tile taken off a set came from, so it can be put back.
type removal struct {
	tile  Tile
	index int

	// the set forked off the origin when the tile sat in its interior.
	split Identifier

	// the origin became empty and was dropped from the table.
	deleted bool

	// the set the tile went to.
	target Identifier
}

// NewTable seats the players around a pool of tiles.
// If no player holds the turn, the first seat gets it.
func NewTable(rules Rules, players [SeatCount]*Player, pool []Tile, source Source) (*Table, error) {
	turns := 0
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("seat %d is empty", i)
		}
		if p.IsTurn {
			turns++
		}
	}
	if turns > 1 {
		return nil, fmt.Errorf("%d players hold the turn", turns)
	}
	if turns == 0 {
		players[0].IsTurn = true
	}
	if source == nil {
		return nil, errors.New("no random source")
	}

	return &Table{
		players: players,
		pool:    append([]Tile(nil), pool...),
		sets:    make(map[Identifier]*Set),
		rules:   rules,
		source:  source,
		logSink: logrus.NewEntry(logrus.StandardLogger()),
	}, nil
}

// WithLogger replaces the log sink of the table.
func (t *Table) WithLogger(entry *logrus.Entry) *Table {
	t.logSink = entry
	return t
}

func (t *Table) Rules() Rules {
	return t.rules
}

func (t *Table) Players() [SeatCount]*Player {
	return t.players
}

// Player finds a seated player by identity. Returns nil if the player is not seated.
func (t *Table) Player(id Identifier) *Player {
	for _, p := range t.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (t *Table) PoolSize() int {
	return len(t.pool)
}

// Set returns a copy of a registered set.
func (t *Table) Set(id Identifier) (*Set, bool) {
	s, ok := t.sets[id]
	if !ok {
		return nil, false
	}
	return &Set{ID: s.ID, tiles: s.Tiles()}, true
}

// Sets returns copies of all registered sets in the order they were placed.
func (t *Table) Sets() []*Set {
	sets := make([]*Set, 0, len(t.order))
	for _, id := range t.order {
		s, _ := t.Set(id)
		sets = append(sets, s)
	}
	return sets
}

// TileCount counts the tiles on the racks, in the pool and on the table.
// It never changes during a game.
func (t *Table) TileCount() int {
	n := len(t.pool)
	for _, p := range t.players {
		n += len(p.rack)
	}
	for _, s := range t.sets {
		n += s.Len()
	}
	return n
}

// HasBeenWon returns whether a player emptied their rack.
func (t *Table) HasBeenWon() bool {
	for _, p := range t.players {
		if p.HasWon() {
			return true
		}
	}
	return false
}

func (t *Table) register(s *Set) {
	t.sets[s.ID] = s
	t.order = append(t.order, s.ID)
}

func (t *Table) unregister(id Identifier) {
	delete(t.sets, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// CurrentTurnPlayerIndex returns the seat holding the turn, or -1 when nobody does.
func (t *Table) CurrentTurnPlayerIndex() (int, *Player) {
	for i, p := range t.players {
		if p.IsTurn {
			return i, p
		}
	}
	return -1, nil
}

// CurrentTurnPlayer returns the player whose turn it is.
func (t *Table) CurrentTurnPlayer() *Player {
	_, p := t.CurrentTurnPlayerIndex()
	return p
}

// NextTurn passes the turn to the next seat, wrapping from the last to the first.
func (t *Table) NextTurn() *Player {
	index, current := t.CurrentTurnPlayerIndex()
	if current != nil {
		current.ToggleTurn()
	}

	next := t.players[(index+1)%SeatCount]
	next.ToggleTurn()

	t.logSink.WithField("player", next.DisplayName).Info("turn passed")
	return next
}

// Draw moves a random tile from the pool to the player's rack.
func (t *Table) Draw(p *Player) (Tile, error) {
	if len(t.pool) == 0 {
		return Tile{}, ErrPoolEmpty
	}
	if p.HasWon() || !p.IsTurn {
		return Tile{}, ErrWrongTurn
	}

	i := t.source.Intn(len(t.pool))
	tile := t.pool[i]
	t.pool = append(t.pool[:i], t.pool[i+1:]...)
	p.AddTileToRack(tile)

	return tile, nil
}

// CreateSet melds rack tiles into a new set and returns its identity.
// Every tile is checked before any is taken off the rack, so a failure leaves the rack untouched.
func (t *Table) CreateSet(p *Player, tileIDs []Identifier) (Identifier, error) {
	if len(tileIDs) == 0 {
		return Identifier{}, fmt.Errorf("%w: no tiles to meld", ErrIllegalMove)
	}

	requested := make(map[Identifier]bool, len(tileIDs))
	for _, id := range tileIDs {
		if requested[id] || !p.HasTile(id) {
			return Identifier{}, fmt.Errorf("%w: %v", ErrMissingTile, id)
		}
		requested[id] = true
	}

	tiles := make([]Tile, 0, len(tileIDs))
	for _, id := range tileIDs {
		tile, _ := p.RemoveTileFromRack(id)
		tiles = append(tiles, tile)
	}

	s := NewSet(tiles...)
	t.register(s)
	return s.ID, nil
}

// AddTileToSet puts a rack tile into a set at index.
func (t *Table) AddTileToSet(p *Player, setID, tileID Identifier, index int) error {
	if !p.HasTile(tileID) {
		return fmt.Errorf("%w: %v", ErrMissingTile, tileID)
	}
	s, ok := t.sets[setID]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownSet, setID)
	}
	if index < 0 || index > s.Len() {
		return fmt.Errorf("%w: %v", ErrIllegalMove, ErrOutOfBounds)
	}

	tile, _ := p.RemoveTileFromRack(tileID)
	return s.AddTile(tile, index)
}

// RemoveTileFromSet takes a tile off a set. Taking it from the interior of the set splits
// the tiles after it into a new set; taking the last tile drops the set from the table.
func (t *Table) RemoveTileFromSet(setID, tileID Identifier) (Tile, error) {
	r, err := t.removeFromSet(setID, tileID)
	if err != nil {
		return Tile{}, err
	}
	return r.tile, nil
}

func (t *Table) removeFromSet(setID, tileID Identifier) (removal, error) {
	s, ok := t.sets[setID]
	if !ok {
		return removal{}, fmt.Errorf("%w: %v", ErrUnknownSet, setID)
	}

	length := s.Len()
	tile, index, ok := s.RemoveTileWithIndex(tileID)
	if !ok {
		return removal{}, fmt.Errorf("%w: %v", ErrMissingTile, tileID)
	}

	r := removal{tile: tile, index: index}
	switch {
	case s.Len() == 0:
		t.unregister(s.ID)
		r.deleted = true
	case index > 0 && index < length-1:
		split := NewSet(s.splitOff(index)...)
		t.register(split)
		r.split = split.ID
	}
	return r, nil
}

// restore reverts a removal from the origin set.
func (t *Table) restore(originID Identifier, r removal) error {
	if r.deleted {
		s := NewSet(r.tile)
		s.ID = originID
		t.register(s)
		return nil
	}

	s, ok := t.sets[originID]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownSet, originID)
	}

	var tail []Tile
	if !r.split.IsZero() {
		split, ok := t.sets[r.split]
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownSet, r.split)
		}
		tail = split.Tiles()
		t.unregister(r.split)
	}

	if err := s.AddTile(r.tile, r.index); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	s.tiles = append(s.tiles, tail...)
	return nil
}

// MoveTileToSet moves a tile between two sets on the table.
func (t *Table) MoveTileToSet(originID, targetID, tileID Identifier, index int) error {
	_, err := t.transfer(originID, targetID, tileID, index)
	return err
}

func (t *Table) transfer(originID, targetID, tileID Identifier, index int) (removal, error) {
	if _, ok := t.sets[targetID]; !ok {
		return removal{}, fmt.Errorf("%w: %v", ErrUnknownSet, targetID)
	}

	r, err := t.removeFromSet(originID, tileID)
	if err != nil {
		return removal{}, err
	}
	r.target = targetID

	target, ok := t.sets[targetID]
	if !ok {
		// the target was the origin, which is gone now
		return removal{}, t.revert(originID, r, fmt.Errorf("%w: %v", ErrUnknownSet, targetID))
	}
	if err := target.AddTile(r.tile, index); err != nil {
		return removal{}, t.revert(originID, r, fmt.Errorf("%w: %v", ErrIllegalMove, err))
	}

	return r, nil
}

// revert undoes a removal after a failed transfer and returns the cause.
func (t *Table) revert(originID Identifier, r removal, cause error) error {
	if err := t.restore(originID, r); err != nil {
		t.logSink.WithFields(logrus.Fields{
			"set":   originID,
			"tile":  r.tile.ID,
			"error": err,
		}).Error("could not put tile back after a failed move")
	}
	return cause
}

// Apply checks the move against the turn, applies it to the table and logs it.
// It returns the move as logged: a draw names the drawn tile and a create names the new set.
// A removed tile is placed in a set of its own so it stays on the table.
func (t *Table) Apply(turn *Turn, m Move) (Move, error) {
	p := turn.Player()
	if err := turn.CanAdd(m); err != nil {
		return Move{}, err
	}
	if !p.IsTurn {
		return Move{}, ErrWrongTurn
	}

	var err error
	switch m.Kind {
	case MoveDraw:
		var tile Tile
		if tile, err = t.Draw(p); err == nil {
			m.Tile = tile.ID
		}
	case MoveCreate:
		m.Set, err = t.CreateSet(p, m.Tiles)
	case MoveAdd:
		err = t.AddTileToSet(p, m.Set, m.Tile, m.Index)
	case MoveTransfer:
		var r removal
		if r, err = t.transfer(m.Origin, m.Set, m.Tile, m.Index); err == nil {
			m.restore = &r
		}
	case MoveRemove:
		var r removal
		if r, err = t.removeFromSet(m.Set, m.Tile); err == nil {
			held := NewSet(r.tile)
			t.register(held)
			r.target = held.ID
			m.restore = &r
		}
	default:
		err = fmt.Errorf("%w: unknown move kind %v", ErrIllegalMove, m.Kind)
	}

	log := t.logSink.WithFields(logrus.Fields{
		"player": p.DisplayName,
		"move":   m.Kind,
	})
	if err != nil {
		log.WithField("error", err).Debug("move rejected")
		return Move{}, err
	}

	turn.moves = append(turn.moves, m)
	log.Debugf("applied %v", m)
	return m, nil
}

// UndoMove reverts a move made by the player.
func (t *Table) UndoMove(p *Player, m Move) error {
	switch m.Kind {
	case MoveCreate:
		s, ok := t.sets[m.Set]
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownSet, m.Set)
		}
		t.unregister(m.Set)
		for _, tile := range s.tiles {
			p.AddTileToRack(tile)
		}

	case MoveDraw:
		tile, ok := p.RemoveTileFromRack(m.Tile)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingTile, m.Tile)
		}
		t.pool = append(t.pool, tile)

	case MoveAdd:
		s, ok := t.sets[m.Set]
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownSet, m.Set)
		}
		tile, ok := s.RemoveTile(m.Tile)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingTile, m.Tile)
		}
		if s.Len() == 0 {
			t.unregister(s.ID)
		}
		p.AddTileToRack(tile)

	case MoveTransfer:
		if m.restore == nil {
			// not applied through Apply: move the tile back the way it came.
			return t.MoveTileToSet(m.Set, m.Origin, m.Tile, m.Index)
		}
		s, ok := t.sets[m.Set]
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownSet, m.Set)
		}
		if _, ok := s.RemoveTile(m.Tile); !ok {
			return fmt.Errorf("%w: %v", ErrMissingTile, m.Tile)
		}
		if s.Len() == 0 {
			t.unregister(s.ID)
		}
		return t.restore(m.Origin, *m.restore)

	case MoveRemove:
		// TODO: decide whether an undone remove takes the tile back from its own set or from a holding area.
		return ErrUnsupported

	default:
		return fmt.Errorf("%w: unknown move kind %v", ErrIllegalMove, m.Kind)
	}

	return nil
}

// AbandonTurn reverts every move of the turn, newest first, and clears the log.
// The turn does not pass.
func (t *Table) AbandonTurn(turn *Turn) error {
	for _, m := range turn.moves {
		if m.Kind == MoveRemove {
			return ErrUnsupported
		}
	}

	p := turn.Player()
	for {
		m, ok := turn.Undo()
		if !ok {
			break
		}
		if err := t.UndoMove(p, m); err != nil {
			return fmt.Errorf("failed to undo %v: %w", m, err)
		}
	}
	turn.Clear()

	t.logSink.WithField("player", p.DisplayName).Info("turn abandoned")
	return nil
}

// EndTurn validates the table after the turn and, if it holds, passes the turn on.
//
// Before the opening meld only new sets may be played, each of them valid and together
// worth more than the meld threshold. A turn that only draws is always accepted.
// After the opening meld every set on the table has to be a valid run or group.
func (t *Table) EndTurn(turn *Turn) error {
	p := turn.Player()
	log := t.logSink.WithField("player", p.DisplayName)

	if !p.IsTurn {
		return ErrWrongTurn
	}

	var err error
	switch {
	case !p.IsPostMeld && turn.Len() == 1 && turn.moves[0].IsDraw():
	case !p.IsPostMeld:
		err = t.validateOpeningMeld(turn)
		if err == nil {
			p.IsPostMeld = true
		}
	default:
		err = t.validateSets()
	}
	if err != nil {
		log.WithField("error", err).Warn("turn rejected")
		return err
	}

	turn.Clear()
	log.Info("turn ended")
	t.NextTurn()
	return nil
}

func (t *Table) validateOpeningMeld(turn *Turn) error {
	sum := 0
	for _, m := range turn.moves {
		if !m.IsCreate() {
			return fmt.Errorf("%w: %v before the opening meld", ErrIllegalMove, m.Kind)
		}
		s, ok := t.sets[m.Set]
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownSet, m.Set)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrIllegalMove, err)
		}
		sum += s.Sum()
	}

	if sum <= t.rules.MeldThreshold {
		return fmt.Errorf("%w: %d of %d", ErrMeldThreshold, sum, t.rules.MeldThreshold)
	}
	return nil
}

func (t *Table) validateSets() error {
	for _, id := range t.order {
		if err := t.sets[id].Validate(); err != nil {
			return fmt.Errorf("%w: set %v: %v", ErrIllegalMove, id, err)
		}
	}
	return nil
}
