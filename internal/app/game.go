package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"klondike/internal/app/countdown"
	"klondike/internal/config"
	"klondike/internal/domain"
	"klondike/internal/ports"
	"klondike/internal/savegame"
)

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrNotDraggable    = errors.New("card cannot be dragged")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrRedealExhausted = errors.New("no redeals left")
	ErrStockEmpty      = errors.New("stock and waste are empty")
	ErrStockNotEmpty   = errors.New("stock still holds cards")
	ErrSaveIO          = errors.New("save slot unavailable")
	ErrLoadCorruptData = errors.New("saved game is corrupt")
)

// errHiddenCard is returned for every face-down card, wherever it lies.
var errHiddenCard = fmt.Errorf("%w: card is face down", ErrNotDraggable)

// Deps are the collaborators of a Game. Saves is required; the rest default
// to a time-seeded rng, a discarding logger and the wall clock.
type Deps struct {
	Saves  ports.SaveSlotPort
	Rand   *rand.Rand
	Logger *slog.Logger
	Clock  countdown.Clock
}

// Game holds one player's Klondike session: the live table, its undo
// history, score, redeal counter and countdown. A Game is not safe for
// concurrent use; the match loop is its only caller.
type Game struct {
	cfg     config.GameConfig
	saves   ports.SaveSlotPort
	rng     *rand.Rand
	baseLog *slog.Logger
	log     *slog.Logger
	timer   *countdown.Countdown

	id      string
	table   *domain.Table
	history History
	score   int
	passes  int
	won     bool
}

// View is the read-only state handed to the presentation layer.
type View struct {
	GameID          string
	Table           domain.Snapshot
	Score           int
	TimeRemaining   int
	PassesRemaining int
	Won             bool
	CanUndo         bool
}

// NewGame validates cfg and deals a fresh shuffled game.
func NewGame(cfg config.GameConfig, deps Deps) (*Game, []Event, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, nil, err
	}
	if deps.Saves == nil {
		return nil, nil, errors.New("game requires a save slot")
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		cfg:     cfg,
		saves:   deps.Saves,
		rng:     deps.Rand,
		baseLog: deps.Logger,
		timer:   countdown.New(cfg.TimeBudgetSeconds, deps.Clock),
	}
	events, err := g.deal()
	if err != nil {
		return nil, nil, err
	}
	return g, events, nil
}

func (g *Game) deal() ([]Event, error) {
	table, err := domain.Deal(domain.ShuffleDeck(domain.NewDeck(), g.rng))
	if err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}

	g.table = table
	g.id = uuid.NewString()
	g.score = MinScore
	g.passes = g.cfg.DeckPassesAllowed
	g.won = false
	g.history.Reset(g.frame())
	g.log = g.baseLog.With("game_id", g.id)

	g.log.Info("dealt new game", "passes", g.passes, "time_budget", g.cfg.TimeBudgetSeconds)
	return []Event{{Kind: EventDealt, Payload: DealtPayload{GameID: g.id}}}, nil
}

func (g *Game) frame() Frame {
	return Frame{Snapshot: g.table.Snapshot(), Score: g.score, PassesRemaining: g.passes}
}

func (g *Game) record() {
	g.history.Push(g.frame())
}

func (g *Game) addScore(points int) {
	g.score = max(MinScore, g.score+points)
}

// mutate runs fn against a copy of the table and swaps the copy in only when
// fn succeeds.
func (g *Game) mutate(fn func(t *domain.Table) error) error {
	next, err := domain.Restore(g.table.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBrokenInvariant, err)
	}
	if err := fn(next); err != nil {
		return err
	}
	g.table = next
	return nil
}

// ID is the uuid assigned at the last deal.
func (g *Game) ID() string { return g.id }

// Score is the current score.
func (g *Game) Score() int { return g.score }

// PassesRemaining is how many more times the waste may be recycled.
func (g *Game) PassesRemaining() int { return g.passes }

// Won reports whether the win has fired for this deal.
func (g *Game) Won() bool { return g.won }

// View returns a detached copy of the game state.
func (g *Game) View() View {
	return View{
		GameID:          g.id,
		Table:           g.table.Snapshot(),
		Score:           g.score,
		TimeRemaining:   g.timer.Remaining(),
		PassesRemaining: g.passes,
		Won:             g.won,
		CanUndo:         g.history.Len() > 1,
	}
}

// Draw turns the top stock card face up onto the waste. With an empty stock
// it recycles the waste instead.
func (g *Game) Draw() ([]Event, error) {
	top, ok := g.table.Top(domain.StockSlot)
	if !ok {
		return g.Restock()
	}

	err := g.mutate(func(t *domain.Table) error {
		if err := t.Move([]domain.Card{top.Card}, domain.WasteSlot); err != nil {
			return err
		}
		return t.Turn(top.Card, true)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: draw: %w", ErrInvalidMove, err)
	}

	g.record()
	g.log.Debug("drew card", "card", top.Card.ID())
	return []Event{{Kind: EventDrawn, Payload: DrawnPayload{Card: top.Card}}}, nil
}

// Restock returns the waste to the stock, face down and in reverse order, so
// the first card drawn comes up first again. Each recycle uses one pass.
func (g *Game) Restock() ([]Event, error) {
	if g.table.Len(domain.StockSlot) > 0 {
		return nil, ErrStockNotEmpty
	}
	if g.passes == 0 {
		return nil, ErrRedealExhausted
	}
	waste := g.table.Pile(domain.WasteSlot)
	if len(waste) == 0 {
		return nil, ErrStockEmpty
	}

	err := g.mutate(func(t *domain.Table) error {
		for i := len(waste) - 1; i >= 0; i-- {
			if err := t.Move(waste[i:i+1], domain.StockSlot); err != nil {
				return err
			}
			if err := t.Turn(waste[i], false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: restock: %w", ErrInvalidMove, err)
	}

	g.passes--
	g.addScore(g.cfg.Scoring.RecycleWaste)
	g.record()

	g.log.Info("recycled waste", "cards", len(waste), "passes_remaining", g.passes)
	return []Event{{Kind: EventRecycled, Payload: RecycledPayload{Cards: len(waste), PassesRemaining: g.passes}}}, nil
}

// Drag resolves the pile that travels with c. Stock cards are drawn rather
// than dragged, and waste and foundation cards move only from the top.
func (g *Game) Drag(c domain.Card) ([]domain.Card, error) {
	slot, ok := g.table.SlotOf(c)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrNotDraggable, domain.ErrUnknownCard, c)
	}

	// Hidden cards get one answer wherever they are.
	if slot.Kind() == domain.KindStock || !g.table.IsFaceUp(c) {
		return nil, errHiddenCard
	}
	switch slot.Kind() {
	case domain.KindWaste, domain.KindFoundation:
		if !g.table.IsTop(c) {
			return nil, fmt.Errorf("%w: %s is covered on %s", ErrNotDraggable, c, slot)
		}
	}

	pile, err := g.table.DraggablePile(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotDraggable, err)
	}
	return pile, nil
}

// Drop moves pile onto target. The pile is resolved again from its first
// card, so a pile that no longer matches the table is rejected.
func (g *Game) Drop(pile []domain.Card, target domain.SlotID) ([]Event, error) {
	if len(pile) == 0 {
		return nil, fmt.Errorf("%w: empty pile", ErrInvalidMove)
	}
	current, err := g.Drag(pile[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if !slices.Equal(current, pile) {
		return nil, fmt.Errorf("%w: stale pile starting at %s", ErrInvalidMove, pile[0])
	}
	src, _ := g.table.SlotOf(pile[0])

	if err := g.table.CanDrop(pile, target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	if err := g.table.Move(pile, target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}

	points := g.movePoints(src, target)
	g.addScore(points)

	events := []Event{{
		Kind:    EventMoved,
		Payload: MovedPayload{Cards: slices.Clone(pile), From: src, To: target, Points: points},
	}}
	events = append(events, g.CheckWin()...)
	g.record()

	g.log.Debug("moved pile", "card", pile[0].ID(), "size", len(pile), "from", src.String(), "to", target.String())
	return events, nil
}

func (g *Game) movePoints(src, dst domain.SlotID) int {
	s := g.cfg.Scoring
	switch {
	case src.Kind() == domain.KindFoundation && dst.Kind() == domain.KindFoundation:
		return 0
	case dst.Kind() == domain.KindFoundation:
		return s.ToFoundation
	case src.Kind() == domain.KindWaste && dst.Kind() == domain.KindTableau:
		return s.WasteToTableau
	case src.Kind() == domain.KindFoundation && dst.Kind() == domain.KindTableau:
		return s.FoundationToTableau
	}
	return 0
}

// Tap handles a single tap: the top stock card is drawn and a face-down
// tableau top is turned over. Any other tap does nothing.
func (g *Game) Tap(c domain.Card) ([]Event, error) {
	slot, ok := g.table.SlotOf(c)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidMove, domain.ErrUnknownCard, c)
	}
	if !g.table.IsTop(c) {
		return nil, nil
	}

	switch {
	case slot.Kind() == domain.KindStock:
		return g.Draw()
	case slot.Kind() == domain.KindTableau && !g.table.IsFaceUp(c):
		return g.reveal(c)
	}
	return nil, nil
}

func (g *Game) reveal(c domain.Card) ([]Event, error) {
	if err := g.table.Turn(c, true); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
	}
	points := g.cfg.Scoring.RevealTableau
	g.addScore(points)
	g.record()

	g.log.Debug("revealed card", "card", c.ID())
	return []Event{{Kind: EventRevealed, Payload: RevealedPayload{Card: c, Points: points}}}, nil
}

// DoubleTap sends a face-up top card from the waste or tableau to the first
// foundation that accepts it. It does nothing when no foundation does.
func (g *Game) DoubleTap(c domain.Card) ([]Event, error) {
	slot, ok := g.table.SlotOf(c)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidMove, domain.ErrUnknownCard, c)
	}
	if slot.Kind() != domain.KindWaste && slot.Kind() != domain.KindTableau {
		return nil, nil
	}
	if !g.table.IsTop(c) || !g.table.IsFaceUp(c) {
		return nil, nil
	}

	pile := []domain.Card{c}
	for _, f := range domain.FoundationSlots() {
		if g.table.CanDrop(pile, f) == nil {
			return g.Drop(pile, f)
		}
	}
	return nil, nil
}

// CheckWin fires the win once per deal: the countdown stops and the time
// left, times the bonus multiplier, is added to the score.
func (g *Game) CheckWin() []Event {
	if g.won || !g.table.IsWon() {
		return nil
	}
	g.won = true
	g.timer.Stop()

	remaining := g.timer.Remaining()
	bonus := remaining * g.cfg.BonusMultiplier
	g.addScore(bonus)

	g.log.Info("game won", "score", g.score, "bonus", bonus, "time_remaining", remaining)
	return []Event{{Kind: EventGameWon, Payload: GameWonPayload{Score: g.score, Bonus: bonus, TimeRemaining: remaining}}}
}

// Undo puts the table, score and redeal counter back to the previous frame.
func (g *Game) Undo() ([]Event, error) {
	prev, ok := g.history.Previous()
	if !ok {
		return nil, ErrNothingToUndo
	}
	table, err := domain.Restore(prev.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("undo: %w", err)
	}
	g.history.Undo()

	g.table = table
	g.score = prev.Score
	g.passes = prev.PassesRemaining

	g.log.Debug("undid move", "frames", g.history.Len())
	return []Event{{Kind: EventUndone, Payload: UndonePayload{Frames: g.history.Len()}}}, nil
}

// Restart deals a new shuffled game and resets the countdown, keeping it
// running if it was.
func (g *Game) Restart(ctx context.Context) ([]Event, error) {
	running := g.timer.Running()
	dealt, err := g.deal()
	if err != nil {
		return nil, err
	}
	g.timer.Reset()
	if running {
		g.timer.Start(ctx)
	}
	return append([]Event{{Kind: EventRestarted}}, dealt...), nil
}

// Save writes the current table to the save slot. The live game is not
// affected by a failed write.
func (g *Game) Save(ctx context.Context) ([]Event, error) {
	data, err := savegame.Encode(savegame.FromSnapshot(g.table.Snapshot()))
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrSaveIO, err)
	}
	if err := g.saves.WriteSave(ctx, data); err != nil {
		g.log.Warn("save failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSaveIO, err)
	}

	g.log.Info("saved game", "bytes", len(data))
	return []Event{{Kind: EventSaved}}, nil
}

// Load replaces the table with the saved one. The document is fully decoded
// and validated before anything changes; on success the history restarts
// from the loaded table while score and redeals carry over.
func (g *Game) Load(ctx context.Context) ([]Event, error) {
	data, err := g.saves.ReadSave(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveIO, err)
	}
	snap, err := savegame.Decode(data)
	if err != nil {
		g.log.Warn("rejected saved game", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLoadCorruptData, err)
	}
	table, err := domain.Restore(snap)
	if err == nil {
		err = table.Validate()
	}
	if err != nil {
		g.log.Warn("rejected saved game", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrLoadCorruptData, err)
	}

	g.table = table
	g.won = table.IsWon()
	g.history.Reset(g.frame())

	g.log.Info("loaded game", "won", g.won)
	return []Event{{Kind: EventLoaded}}, nil
}

// StartTimer starts the countdown. It reports false when the countdown is
// already running, out of time or the game is won.
func (g *Game) StartTimer(ctx context.Context) bool {
	if g.won {
		return false
	}
	return g.timer.Start(ctx)
}

// StopTimer halts the countdown and waits for it.
func (g *Game) StopTimer() {
	g.timer.Stop()
}

// TimerEvents delivers countdown ticks and the timeout.
func (g *Game) TimerEvents() <-chan countdown.Event {
	return g.timer.Events()
}

// TimeRemaining is the countdown's remaining seconds.
func (g *Game) TimeRemaining() int {
	return g.timer.Remaining()
}
