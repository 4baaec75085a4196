package savegame

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"klondike/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealtSnapshot(t *testing.T, seed int64) domain.Snapshot {
	t.Helper()
	table, err := domain.Deal(domain.ShuffleDeck(domain.NewDeck(), rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	return table.Snapshot()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	snap := dealtSnapshot(t, 11)

	first, err := Encode(FromSnapshot(snap))
	require.NoError(t, err)

	loaded, err := Decode(first)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(snap), "decoded snapshot differs from the original")

	second, err := Encode(FromSnapshot(loaded))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEncodeShape(t *testing.T) {
	data, err := Encode(FromSnapshot(dealtSnapshot(t, 5)))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 4)
	assert.JSONEq(t, `[]`, string(raw["waste"]))

	var foundation [][]any
	require.NoError(t, json.Unmarshal(raw["foundation"], &foundation))
	assert.Len(t, foundation, domain.FoundationCount)

	var tableau [][][]any
	require.NoError(t, json.Unmarshal(raw["tableau"], &tableau))
	require.Len(t, tableau, domain.TableauCount)
	require.Len(t, tableau[0], 1)
	assert.Equal(t, true, tableau[0][0][1])
	_, isString := tableau[0][0][0].(string)
	assert.True(t, isString)
}

func TestEntryAcceptsLegacyBareString(t *testing.T) {
	var e Entry
	require.NoError(t, json.Unmarshal([]byte(`"Queen_hearts"`), &e))
	assert.Equal(t, Entry{ID: "Queen_hearts", FaceUp: false}, e)

	require.NoError(t, json.Unmarshal([]byte(`["Ace_clubs", true]`), &e))
	assert.Equal(t, Entry{ID: "Ace_clubs", FaceUp: true}, e)

	assert.Error(t, json.Unmarshal([]byte(`["Ace_clubs"]`), &e))
	assert.Error(t, json.Unmarshal([]byte(`[1, true]`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"id":"Ace_clubs"}`), &e))
}

func TestDecodeLegacyDocument(t *testing.T) {
	doc := FromSnapshot(dealtSnapshot(t, 9))
	var b strings.Builder
	b.WriteString(`{"stock":[`)
	for i, e := range doc.Stock {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"` + e.ID + `"`)
	}
	b.WriteString(`],"waste":[],"foundation":[[],[],[],[]],"tableau":`)
	tableau, err := json.Marshal(doc.Tableau)
	require.NoError(t, err)
	b.Write(tableau)
	b.WriteString("}")

	snap, err := Decode([]byte(b.String()))
	require.NoError(t, err)
	assert.Len(t, snap.Pile(domain.StockSlot), len(doc.Stock))
	for _, pc := range snap.Pile(domain.StockSlot) {
		assert.False(t, pc.FaceUp)
	}
}

func TestDecodeRejectsCorruptDocuments(t *testing.T) {
	valid := FromSnapshot(dealtSnapshot(t, 2))

	dup := valid
	dup.Waste = []Entry{valid.Stock[0]}

	missing := valid
	missing.Stock = valid.Stock[1:]

	unknown := valid
	unknown.Stock = append([]Entry{{ID: "Joker_red"}}, valid.Stock[1:]...)

	threeFoundations := valid
	threeFoundations.Foundation = valid.Foundation[:3]

	encode := func(d Document) string {
		data, err := Encode(d)
		require.NoError(t, err)
		return string(data)
	}

	tests := []struct {
		name string
		data string
	}{
		{name: "duplicate card", data: encode(dup)},
		{name: "51 cards", data: encode(missing)},
		{name: "unknown card id", data: encode(unknown)},
		{name: "three foundations", data: encode(threeFoundations)},
		{name: "not json", data: "stock: []"},
		{name: "null", data: "null"},
		{name: "empty object", data: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
