package app

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klondike/internal/app/countdown"
	"klondike/internal/config"
	"klondike/internal/domain"
	"klondike/internal/ports"
)

type memSaves struct {
	data     []byte
	writeErr error
	readErr  error
	writes   int
}

func (m *memSaves) WriteSave(_ context.Context, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.data = slices.Clone(data)
	return nil
}

func (m *memSaves) ReadSave(context.Context) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.data == nil {
		return nil, ports.ErrNoSave
	}
	return slices.Clone(m.data), nil
}

// idleClock never ticks.
type idleClock struct{}

func (idleClock) NewTicker(time.Duration) countdown.Ticker { return idleTicker{} }

type idleTicker struct{}

func (idleTicker) C() <-chan time.Time { return nil }
func (idleTicker) Stop()               {}

// stepClock ticks once per send on its channel.
type stepClock struct {
	c chan time.Time
}

func (s *stepClock) NewTicker(time.Duration) countdown.Ticker { return stepTicker{c: s.c} }

type stepTicker struct {
	c chan time.Time
}

func (s stepTicker) C() <-chan time.Time { return s.c }
func (s stepTicker) Stop()               {}

func up(s domain.Suit, r domain.Rank) domain.PlacedCard {
	return domain.PlacedCard{Card: domain.Card{Suit: s, Rank: r}, FaceUp: true}
}

func down(s domain.Suit, r domain.Rank) domain.PlacedCard {
	return domain.PlacedCard{Card: domain.Card{Suit: s, Rank: r}}
}

func card(s domain.Suit, r domain.Rank) domain.Card {
	return domain.Card{Suit: s, Rank: r}
}

func newTestGame(t *testing.T, cfg config.GameConfig, saves *memSaves) *Game {
	t.Helper()
	if saves == nil {
		saves = &memSaves{}
	}
	g, _, err := NewGame(cfg, Deps{
		Saves: saves,
		Rand:  rand.New(rand.NewSource(11)),
		Clock: idleClock{},
	})
	require.NoError(t, err)
	t.Cleanup(g.StopTimer)
	return g
}

// setLayout replaces the dealt table with layout; cards it leaves out go face
// down onto the stock.
func setLayout(t *testing.T, g *Game, layout map[domain.SlotID][]domain.PlacedCard) {
	t.Helper()
	var piles [domain.NumSlots][]domain.PlacedCard
	used := map[domain.Card]bool{}
	for slot, pile := range layout {
		for _, pc := range pile {
			used[pc.Card] = true
		}
		piles[slot] = append(piles[slot], pile...)
	}
	for _, c := range domain.NewDeck() {
		if !used[c] {
			piles[domain.StockSlot] = append(piles[domain.StockSlot], domain.PlacedCard{Card: c})
		}
	}
	snap, err := domain.NewSnapshot(piles)
	require.NoError(t, err)
	table, err := domain.Restore(snap)
	require.NoError(t, err)

	g.table = table
	g.history.Reset(g.frame())
}

func TestNewGameDeals(t *testing.T) {
	g, events, err := NewGame(config.Default(), Deps{Saves: &memSaves{}, Clock: idleClock{}})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, EventDealt, events[0].Kind)
	assert.Equal(t, g.ID(), events[0].Payload.(DealtPayload).GameID)
	assert.NotEmpty(t, g.ID())

	view := g.View()
	assert.Equal(t, 0, view.Score)
	assert.Equal(t, 3, view.PassesRemaining)
	assert.Equal(t, 300, view.TimeRemaining)
	assert.False(t, view.CanUndo)
	assert.Len(t, view.Table.Pile(domain.StockSlot), domain.DeckSize-domain.DealtToTableau)
}

func TestNewGameRejectsBadInput(t *testing.T) {
	cfg := config.Default()
	cfg.WasteSize = 2
	_, _, err := NewGame(cfg, Deps{Saves: &memSaves{}})
	assert.Error(t, err)

	_, _, err = NewGame(config.Default(), Deps{})
	assert.Error(t, err)
}

func TestDrawThenRedealLimit(t *testing.T) {
	cfg := config.Default()
	cfg.DeckPassesAllowed = 1
	g := newTestGame(t, cfg, nil)

	stock := g.table.Pile(domain.StockSlot)
	for range stock {
		events, err := g.Draw()
		require.NoError(t, err)
		require.Equal(t, EventDrawn, events[0].Kind)
	}
	assert.Equal(t, 0, g.table.Len(domain.StockSlot))
	top, _ := g.table.Top(domain.WasteSlot)
	assert.Equal(t, stock[0], top.Card)
	assert.True(t, top.FaceUp)

	events, err := g.Draw()
	require.NoError(t, err)
	require.Equal(t, EventRecycled, events[0].Kind)
	assert.Equal(t, 0, g.PassesRemaining())
	assert.Equal(t, 0, g.Score(), "recycle penalty is floored at zero")
	assert.Equal(t, 0, g.table.Len(domain.WasteSlot))
	assert.Equal(t, stock, g.table.Pile(domain.StockSlot), "recycled stock deals in the original order")
	for _, c := range stock {
		assert.False(t, g.table.IsFaceUp(c))
	}

	_, err = g.Restock()
	assert.ErrorIs(t, err, ErrStockNotEmpty)

	for range stock {
		_, err := g.Draw()
		require.NoError(t, err)
	}
	before := g.View()
	_, err = g.Draw()
	assert.ErrorIs(t, err, ErrRedealExhausted)
	assert.True(t, before.Table.Equal(g.View().Table))
	assert.Equal(t, before.PassesRemaining, g.PassesRemaining())
}

func TestRestockWithNothingToRecycle(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	pile := make([]domain.PlacedCard, 0, domain.DeckSize)
	for _, c := range domain.NewDeck() {
		pile = append(pile, domain.PlacedCard{Card: c})
	}
	setLayout(t, g, map[domain.SlotID][]domain.PlacedCard{domain.TableauSlot(0): pile})

	_, err := g.Draw()
	assert.ErrorIs(t, err, ErrStockEmpty)
	assert.Equal(t, 3, g.PassesRemaining())
}

func TestUndoReturnsToDeal(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	dealt := g.View()

	for i := 0; i < 5; i++ {
		_, err := g.Draw()
		require.NoError(t, err)
	}
	assert.False(t, dealt.Table.Equal(g.View().Table))

	for i := 0; i < 5; i++ {
		_, err := g.Undo()
		require.NoError(t, err)
	}
	assert.True(t, dealt.Table.Equal(g.View().Table))
	assert.False(t, g.View().CanUndo)

	_, err := g.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.True(t, dealt.Table.Equal(g.View().Table))
}

func dropLayout() map[domain.SlotID][]domain.PlacedCard {
	return map[domain.SlotID][]domain.PlacedCard{
		domain.WasteSlot:         {up(domain.Diamonds, 4), up(domain.Hearts, 5)},
		domain.TableauSlot(0):    {down(domain.Diamonds, domain.King), up(domain.Spades, 6)},
		domain.TableauSlot(1):    {up(domain.Spades, 9), up(domain.Hearts, 8), up(domain.Clubs, 7)},
		domain.TableauSlot(2):    {up(domain.Diamonds, 5)},
		domain.FoundationSlot(0): {up(domain.Hearts, domain.Ace)},
		domain.FoundationSlot(2): {up(domain.Clubs, domain.Ace), up(domain.Clubs, 2), up(domain.Clubs, 3), up(domain.Clubs, 4)},
	}
}

func TestDrag(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	setLayout(t, g, dropLayout())
	stockTop, _ := g.table.Top(domain.StockSlot)

	tests := []struct {
		name string
		card domain.Card
		want []domain.Card
		err  error
	}{
		{name: "tableau run", card: card(domain.Hearts, 8), want: []domain.Card{card(domain.Hearts, 8), card(domain.Clubs, 7)}},
		{name: "waste top", card: card(domain.Hearts, 5), want: []domain.Card{card(domain.Hearts, 5)}},
		{name: "foundation top", card: card(domain.Clubs, 4), want: []domain.Card{card(domain.Clubs, 4)}},
		{name: "covered waste card", card: card(domain.Diamonds, 4), err: ErrNotDraggable},
		{name: "covered foundation card", card: card(domain.Clubs, 3), err: ErrNotDraggable},
		{name: "stock card", card: stockTop.Card, err: ErrNotDraggable},
		{name: "face-down tableau card", card: card(domain.Diamonds, domain.King), err: ErrNotDraggable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Drag(tt.card)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.ErrorIs(t, err, ErrNotDraggable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDropValidatesBeforeMoving(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	setLayout(t, g, dropLayout())
	before := g.View()

	tests := []struct {
		name   string
		pile   []domain.Card
		target domain.SlotID
	}{
		{name: "stale pile", pile: []domain.Card{card(domain.Hearts, 8)}, target: domain.TableauSlot(3)},
		{name: "breaks foundation sequence", pile: []domain.Card{card(domain.Hearts, 5)}, target: domain.FoundationSlot(0)},
		{name: "same colour on tableau", pile: []domain.Card{card(domain.Clubs, 7)}, target: domain.TableauSlot(0)},
		{name: "onto waste", pile: []domain.Card{card(domain.Clubs, 7)}, target: domain.WasteSlot},
		{name: "covered card", pile: []domain.Card{card(domain.Diamonds, 4)}, target: domain.TableauSlot(4)},
		{name: "empty pile", pile: nil, target: domain.TableauSlot(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := g.Drop(tt.pile, tt.target)
			assert.ErrorIs(t, err, ErrInvalidMove)
			assert.Nil(t, events)
			assert.True(t, before.Table.Equal(g.View().Table))
			assert.Equal(t, before.Score, g.Score())
		})
	}
}

func TestDropScoresAndUndoRestoresScore(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	setLayout(t, g, dropLayout())

	events, err := g.Drop([]domain.Card{card(domain.Hearts, 5)}, domain.TableauSlot(0))
	require.NoError(t, err)
	require.Len(t, events, 1)
	moved := events[0].Payload.(MovedPayload)
	assert.Equal(t, domain.WasteSlot, moved.From)
	assert.Equal(t, domain.TableauSlot(0), moved.To)
	assert.Equal(t, 5, moved.Points)
	assert.Equal(t, 5, g.Score())

	_, err = g.Drop([]domain.Card{card(domain.Clubs, 4)}, domain.TableauSlot(2))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Score(), "foundation to tableau penalty is floored")

	_, err = g.Drop([]domain.Card{card(domain.Clubs, 4)}, domain.FoundationSlot(2))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Score())

	_, err = g.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, g.Score())
	_, err = g.Undo()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Score())
	_, err = g.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, g.Score())
	top, _ := g.table.Top(domain.WasteSlot)
	assert.Equal(t, card(domain.Hearts, 5), top.Card)
}

func TestTap(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	setLayout(t, g, map[domain.SlotID][]domain.PlacedCard{
		domain.TableauSlot(3): {down(domain.Spades, 2), down(domain.Hearts, 9)},
		domain.TableauSlot(4): {up(domain.Clubs, 10)},
	})

	events, err := g.Tap(card(domain.Spades, 2))
	require.NoError(t, err)
	assert.Empty(t, events, "covered card")

	events, err = g.Tap(card(domain.Clubs, 10))
	require.NoError(t, err)
	assert.Empty(t, events, "face-up card")

	events, err = g.Tap(card(domain.Hearts, 9))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventRevealed, events[0].Kind)
	assert.True(t, g.table.IsFaceUp(card(domain.Hearts, 9)))
	assert.Equal(t, 5, g.Score())

	stockTop, _ := g.table.Top(domain.StockSlot)
	events, err = g.Tap(stockTop.Card)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventDrawn, events[0].Kind)
	wasteTop, _ := g.table.Top(domain.WasteSlot)
	assert.Equal(t, stockTop.Card, wasteTop.Card)

	_, err = g.Tap(domain.Card{})
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestDoubleTapSendsToFoundation(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	setLayout(t, g, map[domain.SlotID][]domain.PlacedCard{
		domain.WasteSlot:      {up(domain.Spades, domain.Ace)},
		domain.TableauSlot(0): {up(domain.Spades, 2)},
		domain.TableauSlot(1): {up(domain.Hearts, 7)},
	})

	events, err := g.DoubleTap(card(domain.Spades, domain.Ace))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.FoundationSlot(0), events[0].Payload.(MovedPayload).To)

	_, err = g.DoubleTap(card(domain.Spades, 2))
	require.NoError(t, err)
	assert.Equal(t, []domain.Card{card(domain.Spades, domain.Ace), card(domain.Spades, 2)}, g.table.Pile(domain.FoundationSlot(0)))
	assert.Equal(t, 20, g.Score())

	events, err = g.DoubleTap(card(domain.Hearts, 7))
	require.NoError(t, err)
	assert.Empty(t, events, "no foundation accepts it")
	assert.Equal(t, 1, g.table.Len(domain.TableauSlot(1)))
}

func TestWinFiresOnce(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	layout := map[domain.SlotID][]domain.PlacedCard{}
	for i, s := range domain.Suits() {
		for r := domain.Ace; r <= domain.King; r++ {
			if s == domain.Clubs && r == domain.King {
				continue
			}
			layout[domain.FoundationSlot(i)] = append(layout[domain.FoundationSlot(i)], up(s, r))
		}
	}
	layout[domain.WasteSlot] = []domain.PlacedCard{up(domain.Clubs, domain.King)}
	setLayout(t, g, layout)

	events, err := g.DoubleTap(card(domain.Clubs, domain.King))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventGameWon, events[1].Kind)
	assert.Equal(t, GameWonPayload{Score: 3010, Bonus: 3000, TimeRemaining: 300}, events[1].Payload)
	assert.True(t, g.Won())
	assert.False(t, g.StartTimer(context.Background()))

	_, err = g.Undo()
	require.NoError(t, err)
	events, err = g.DoubleTap(card(domain.Clubs, domain.King))
	require.NoError(t, err)
	require.Len(t, events, 1, "win is reported once per deal")
	assert.Equal(t, 10, g.Score())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	saves := &memSaves{}
	g := newTestGame(t, config.Default(), saves)
	for i := 0; i < 3; i++ {
		_, err := g.Draw()
		require.NoError(t, err)
	}
	saved := g.View()

	events, err := g.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EventSaved, events[0].Kind)
	assert.Equal(t, 1, saves.writes)

	for i := 0; i < 4; i++ {
		_, err := g.Draw()
		require.NoError(t, err)
	}

	events, err = g.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EventLoaded, events[0].Kind)
	assert.True(t, saved.Table.Equal(g.View().Table))
	assert.False(t, g.View().CanUndo, "history restarts at the loaded table")

	_, err = g.Save(context.Background())
	require.NoError(t, err)
	first := slices.Clone(saves.data)
	_, err = g.Load(context.Background())
	require.NoError(t, err)
	_, err = g.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, saves.data)
}

func TestLoadFailuresKeepState(t *testing.T) {
	tests := []struct {
		name  string
		saves *memSaves
		err   error
	}{
		{name: "no save", saves: &memSaves{}, err: ports.ErrNoSave},
		{name: "read failure", saves: &memSaves{readErr: errors.New("disk gone")}, err: ErrSaveIO},
		{name: "not json", saves: &memSaves{data: []byte("{bad")}, err: ErrLoadCorruptData},
		{name: "missing cards", saves: &memSaves{data: []byte(`{"stock":[["King_spades",false]],"waste":[],"foundation":[[],[],[],[]],"tableau":[[],[],[],[],[],[],[]]}`)}, err: ErrLoadCorruptData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, config.Default(), tt.saves)
			_, err := g.Draw()
			require.NoError(t, err)
			before := g.View()

			_, err = g.Load(context.Background())
			assert.ErrorIs(t, err, tt.err)
			after := g.View()
			assert.True(t, before.Table.Equal(after.Table))
			assert.Equal(t, before.GameID, after.GameID)
			assert.True(t, after.CanUndo)
		})
	}
}

func TestLoadRejectsBrokenFoundation(t *testing.T) {
	saves := &memSaves{}
	g := newTestGame(t, config.Default(), saves)
	setLayout(t, g, map[domain.SlotID][]domain.PlacedCard{
		domain.FoundationSlot(0): {up(domain.Hearts, 2)},
	})
	_, err := g.Save(context.Background())
	require.NoError(t, err)

	_, err = g.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoadCorruptData)
}

func TestSaveFailureKeepsState(t *testing.T) {
	g := newTestGame(t, config.Default(), &memSaves{writeErr: errors.New("read-only")})
	before := g.View()

	_, err := g.Save(context.Background())
	assert.ErrorIs(t, err, ErrSaveIO)
	assert.True(t, before.Table.Equal(g.View().Table))
}

func TestRestart(t *testing.T) {
	clock := &stepClock{c: make(chan time.Time)}
	g, _, err := NewGame(config.Default(), Deps{Saves: &memSaves{}, Clock: clock})
	require.NoError(t, err)
	defer g.StopTimer()

	require.True(t, g.StartTimer(context.Background()))
	clock.c <- time.Now()
	select {
	case ev := <-g.TimerEvents():
		assert.Equal(t, countdown.Event{Kind: countdown.EventTick, Remaining: 299}, ev)
	case <-time.After(time.Second):
		t.Fatal("no tick")
	}
	_, err = g.Draw()
	require.NoError(t, err)
	oldID := g.ID()

	events, err := g.Restart(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventRestarted, events[0].Kind)
	assert.Equal(t, EventDealt, events[1].Kind)

	assert.NotEqual(t, oldID, g.ID())
	assert.Equal(t, 300, g.TimeRemaining())
	assert.False(t, g.View().CanUndo)
	assert.Equal(t, 3, g.PassesRemaining())
	assert.False(t, g.StartTimer(context.Background()), "countdown kept running across the restart")
}

func TestDragDoesNotLocateHiddenCards(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	setLayout(t, g, dropLayout())
	stockTop, _ := g.table.Top(domain.StockSlot)

	_, stockErr := g.Drag(stockTop.Card)
	_, tableauErr := g.Drag(card(domain.Diamonds, domain.King))
	require.ErrorIs(t, stockErr, ErrNotDraggable)
	require.ErrorIs(t, tableauErr, ErrNotDraggable)
	assert.Equal(t, stockErr.Error(), tableauErr.Error())
	assert.NotContains(t, stockErr.Error(), stockTop.Card.ID())
	assert.NotContains(t, stockErr.Error(), "stock")
}

func TestFoundationShuffleEarnsNothing(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	ace := card(domain.Hearts, domain.Ace)
	setLayout(t, g, map[domain.SlotID][]domain.PlacedCard{
		domain.FoundationSlot(0): {up(domain.Hearts, domain.Ace)},
	})

	for i := 0; i < 10; i++ {
		events, err := g.Drop([]domain.Card{ace}, domain.FoundationSlot((i+1)%2))
		require.NoError(t, err)
		assert.Equal(t, 0, events[0].Payload.(MovedPayload).Points)
	}
	assert.Equal(t, 0, g.Score())
}

func TestUndoOverDropsAndReveal(t *testing.T) {
	g := newTestGame(t, config.Default(), nil)
	layout := dropLayout()
	layout[domain.TableauSlot(3)] = []domain.PlacedCard{up(domain.Hearts, 7)}
	setLayout(t, g, layout)
	dealt := g.View()
	king := card(domain.Diamonds, domain.King)

	_, err := g.Drop([]domain.Card{card(domain.Spades, 6)}, domain.TableauSlot(3))
	require.NoError(t, err)
	afterMove := g.View()
	_, err = g.Tap(king)
	require.NoError(t, err)
	require.True(t, g.table.IsFaceUp(king))
	_, err = g.Drop([]domain.Card{card(domain.Hearts, 5)}, domain.TableauSlot(3))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Score())

	_, err = g.Undo()
	require.NoError(t, err)
	top, _ := g.table.Top(domain.WasteSlot)
	assert.Equal(t, card(domain.Hearts, 5), top.Card)
	assert.Equal(t, 5, g.Score())

	_, err = g.Undo()
	require.NoError(t, err)
	assert.False(t, g.table.IsFaceUp(king))
	assert.True(t, afterMove.Table.Equal(g.View().Table))
	assert.Equal(t, 0, g.Score())

	_, err = g.Undo()
	require.NoError(t, err)
	assert.True(t, dealt.Table.Equal(g.View().Table))

	_, err = g.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	require.NoError(t, g.table.Validate())
}

// randomStep plays one random operation and returns its error.
func randomStep(g *Game, r *rand.Rand, deck []domain.Card) error {
	c := deck[r.Intn(len(deck))]
	var err error
	switch r.Intn(7) {
	case 0:
		_, err = g.Draw()
	case 1:
		_, err = g.Restock()
	case 2:
		_, err = g.Tap(c)
	case 3:
		_, err = g.DoubleTap(c)
	case 4:
		_, err = g.Undo()
	default:
		pile, dragErr := g.Drag(c)
		if dragErr != nil {
			return dragErr
		}
		_, err = g.Drop(pile, domain.SlotID(r.Intn(domain.NumSlots)))
	}
	return err
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	expected := []error{ErrInvalidMove, ErrNotDraggable, ErrNothingToUndo, ErrRedealExhausted, ErrStockEmpty, ErrStockNotEmpty}
	deck := domain.NewDeck()

	for seed := int64(1); seed <= 25; seed++ {
		g, _, err := NewGame(config.Default(), Deps{
			Saves: &memSaves{},
			Rand:  rand.New(rand.NewSource(seed)),
			Clock: idleClock{},
		})
		require.NoError(t, err)
		r := rand.New(rand.NewSource(seed * 7919))

		for step := 0; step < 400; step++ {
			if err := randomStep(g, r, deck); err != nil {
				known := false
				for _, want := range expected {
					known = known || errors.Is(err, want)
				}
				require.Truef(t, known, "seed %d step %d: unexpected error %v", seed, step, err)
			}

			require.NoErrorf(t, g.table.Validate(), "seed %d step %d", seed, step)
			head, ok := g.history.Current()
			require.True(t, ok)
			require.Truef(t, head.Snapshot.Equal(g.table.Snapshot()), "seed %d step %d: history head differs from table", seed, step)
			require.Equal(t, g.score, head.Score)
			require.Equal(t, g.passes, head.PassesRemaining)
			require.GreaterOrEqual(t, g.score, MinScore)
		}
		g.StopTimer()
	}
}
