package flashcard_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashdeck/internal/flashcard"
	"github.com/vytor/flashdeck/internal/models"
)

func card(id int64, prompt string) models.Card {
	return models.Card{ID: id, PromptText: prompt, TargetText: prompt + "-t", Transliteration: prompt + "-r"}
}

func fields(prompt string) models.CardFields {
	return models.CardFields{PromptText: prompt, TargetText: prompt + "-t", Transliteration: prompt + "-r"}
}

func threeCards() []models.Card {
	return []models.Card{card(1, "one"), card(2, "two"), card(3, "three")}
}

func TestNewDeck_IdentityOrder(t *testing.T) {
	d := flashcard.NewDeck(threeCards())

	assert.Equal(t, []int{0, 1, 2}, d.Order())
	assert.Equal(t, 0, d.Position())
	assert.False(t, d.IsFlipped())

	cur, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), cur.ID)
}

func TestNewDeck_CopiesInput(t *testing.T) {
	cards := threeCards()
	d := flashcard.NewDeck(cards)
	cards[0].PromptText = "mutated"

	assert.Equal(t, "one", d.Cards()[0].PromptText)
}

func TestAdd_AssignsMaxPlusOne(t *testing.T) {
	d := flashcard.NewDeck([]models.Card{card(4, "a"), card(9, "b"), card(2, "c")})

	added, ok := d.Add(fields("new"))
	require.True(t, ok)
	assert.Equal(t, int64(10), added.ID)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []int{0, 1, 2, 3}, d.Order())
}

func TestAdd_EmptyDeckStartsAtOne(t *testing.T) {
	d := flashcard.NewDeck(nil)

	added, ok := d.Add(fields("first"))
	require.True(t, ok)
	assert.Equal(t, int64(1), added.ID)
}

func TestAdd_NegativeIDsStillStartAtOne(t *testing.T) {
	d := flashcard.NewDeck([]models.Card{card(-5, "neg")})

	added, ok := d.Add(fields("x"))
	require.True(t, ok)
	assert.Equal(t, int64(1), added.ID)
}

func TestAdd_RefusesBlankFields(t *testing.T) {
	d := flashcard.NewDeck(threeCards())

	cases := []models.CardFields{
		{PromptText: "", TargetText: "b", Transliteration: "c"},
		{PromptText: "a", TargetText: "", Transliteration: "c"},
		{PromptText: "a", TargetText: "b", Transliteration: ""},
		{},
	}
	for _, f := range cases {
		_, ok := d.Add(f)
		assert.False(t, ok)
	}
	assert.Equal(t, 3, d.Len())
}

func TestAdd_ResetsShuffledOrder(t *testing.T) {
	d := flashcard.NewDeck(threeCards(), flashcard.WithRand(rand.New(rand.NewPCG(1, 2))))
	d.Shuffle()

	_, ok := d.Add(fields("four"))
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, d.Order())
}

func TestUpdate_PreservesID(t *testing.T) {
	d := flashcard.NewDeck(threeCards())

	ok := d.Update(2, fields("deux"))
	require.True(t, ok)

	got, found := d.Find(2)
	require.True(t, found)
	assert.Equal(t, "deux", got.PromptText)
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, []int{0, 1, 2}, d.Order())
}

func TestUpdate_MissingIDIsNoop(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	before := d.Cards()

	assert.False(t, d.Update(99, fields("x")))
	assert.Equal(t, before, d.Cards())
}

func TestUpdate_BlankFieldIsNoop(t *testing.T) {
	d := flashcard.NewDeck(threeCards())

	assert.False(t, d.Update(1, models.CardFields{PromptText: "x", TargetText: "y"}))
	got, _ := d.Find(1)
	assert.Equal(t, "one", got.PromptText)
}

func TestRemove_ScenarioClampsPosition(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	d.Advance()
	d.Advance()
	require.Equal(t, 2, d.Position())

	require.True(t, d.Remove(2))

	ids := []int64{}
	for _, c := range d.Cards() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{1, 3}, ids)
	assert.Equal(t, []int{0, 1}, d.Order())
	assert.Equal(t, 1, d.Position())
}

func TestRemove_LastCardLeavesEmptyDeck(t *testing.T) {
	d := flashcard.NewDeck([]models.Card{card(1, "only")})

	require.True(t, d.Remove(1))
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.Position())
	assert.Empty(t, d.Order())

	_, ok := d.Current()
	assert.False(t, ok)
}

func TestRemove_KeepsPositionWhenInBounds(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	d.Advance()

	require.True(t, d.Remove(3))
	assert.Equal(t, 1, d.Position())
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	d := flashcard.NewDeck(threeCards(), flashcard.WithRand(rand.New(rand.NewPCG(3, 4))))
	d.Shuffle()
	order := d.Order()

	assert.False(t, d.Remove(42))
	assert.Equal(t, order, d.Order())
}

func TestRemove_DropsFromFlippedSet(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	d.ToggleFlip(2)

	d.Remove(2)
	assert.Empty(t, d.FlippedIDs())
}

func TestOrderIsIdentityAfterEveryAddAndRemove(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	d := flashcard.NewDeck(threeCards(), flashcard.WithRand(rng))

	for i := 0; i < 50; i++ {
		d.Shuffle()
		if rng.IntN(2) == 0 || d.Len() == 0 {
			d.Add(fields("n"))
		} else {
			cards := d.Cards()
			d.Remove(cards[rng.IntN(len(cards))].ID)
		}
		want := make([]int, d.Len())
		for j := range want {
			want[j] = j
		}
		assert.Equal(t, want, d.Order())
		assert.GreaterOrEqual(t, d.Position(), 0)
		if d.Len() > 0 {
			assert.Less(t, d.Position(), d.Len())
		}
	}
}

func TestShuffle_PreservesIndicesAndResetsState(t *testing.T) {
	cards := make([]models.Card, 20)
	for i := range cards {
		cards[i] = card(int64(i+1), "c")
	}
	d := flashcard.NewDeck(cards, flashcard.WithRand(rand.New(rand.NewPCG(11, 13))))
	d.Advance()
	d.Flip()
	d.ToggleFlip(3)
	d.ToggleFlip(5)

	d.Shuffle()

	order := d.Order()
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, d.Position())
	assert.False(t, d.IsFlipped())
	assert.False(t, d.IsRevealed())
	assert.Empty(t, d.FlippedIDs())
}

func TestShuffle_EmptyDeck(t *testing.T) {
	d := flashcard.NewDeck(nil)
	d.Shuffle()
	assert.Empty(t, d.Order())
}

func TestShuffle_DefaultSource(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	d.Shuffle()
	assert.Len(t, d.Order(), 3)
}

func TestReset_RestoresIdentity(t *testing.T) {
	d := flashcard.NewDeck(threeCards(), flashcard.WithRand(rand.New(rand.NewPCG(5, 6))))
	d.Shuffle()
	d.Advance()
	d.Flip()
	d.ToggleFlip(1)

	d.Reset()

	assert.Equal(t, []int{0, 1, 2}, d.Order())
	assert.Equal(t, 0, d.Position())
	assert.False(t, d.IsFlipped())
	assert.Empty(t, d.FlippedIDs())
}

func TestAdvance_ClampsAtEnd(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	assert.True(t, d.Advance())
	assert.True(t, d.Advance())

	d.Flip()
	assert.False(t, d.Advance())
	assert.Equal(t, 2, d.Position())
	assert.True(t, d.IsFlipped(), "a refused move leaves the flip alone")
}

func TestRetreat_ClampsAtStart(t *testing.T) {
	d := flashcard.NewDeck(threeCards())

	assert.False(t, d.Retreat())
	assert.Equal(t, 0, d.Position())
}

func TestMoveResetsFlip(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	d.Flip()
	d.Reveal()

	d.Advance()
	assert.False(t, d.IsFlipped())
	assert.False(t, d.IsRevealed())

	d.Flip()
	d.Retreat()
	assert.False(t, d.IsFlipped())
}

func TestAdvanceOnEmptyDeck(t *testing.T) {
	d := flashcard.NewDeck(nil)
	assert.False(t, d.Advance())
	assert.False(t, d.Retreat())
	assert.Equal(t, 0, d.Position())
}

func TestFlip_TogglesWithoutMoving(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	d.Advance()

	d.Flip()
	assert.True(t, d.IsFlipped())
	d.Flip()
	assert.False(t, d.IsFlipped())
	assert.Equal(t, 1, d.Position())
}

func TestReveal_OnlyOnBack(t *testing.T) {
	d := flashcard.NewDeck(threeCards())

	assert.False(t, d.Reveal())
	assert.False(t, d.IsRevealed())

	d.Flip()
	assert.True(t, d.Reveal())
	assert.True(t, d.IsRevealed())

	d.Flip()
	assert.False(t, d.IsRevealed(), "flipping back hides the transliteration")
}

func TestToggleFlip_IndependentPerCard(t *testing.T) {
	d := flashcard.NewDeck(threeCards())

	d.ToggleFlip(1)
	d.ToggleFlip(3)
	assert.True(t, d.IsCardFlipped(1))
	assert.False(t, d.IsCardFlipped(2))
	assert.Equal(t, []int64{1, 3}, d.FlippedIDs())

	d.Advance()
	d.Retreat()
	assert.Equal(t, []int64{1, 3}, d.FlippedIDs(), "navigation does not touch the grid")

	d.ToggleFlip(1)
	assert.Equal(t, []int64{3}, d.FlippedIDs())
}

func TestReplace_ResetsNavigation(t *testing.T) {
	d := flashcard.NewDeck(threeCards())
	d.Advance()
	d.Advance()
	d.Flip()
	d.ToggleFlip(2)

	d.Replace([]models.Card{card(7, "seven"), card(7, "dup")})

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []int{0, 1}, d.Order())
	assert.Equal(t, 0, d.Position())
	assert.False(t, d.IsFlipped())
	assert.Empty(t, d.FlippedIDs())
}

func TestDuplicateIDs_UpdateAndRemoveAffectAllMatches(t *testing.T) {
	d := flashcard.NewDeck([]models.Card{card(7, "a"), card(7, "b"), card(8, "c")})

	require.True(t, d.Update(7, fields("z")))
	for _, c := range d.Cards()[:2] {
		assert.Equal(t, "z", c.PromptText)
	}

	require.True(t, d.Remove(7))
	assert.Equal(t, 1, d.Len())
}

func TestOrdered_FollowsDisplayOrder(t *testing.T) {
	d := flashcard.NewDeck(threeCards(), flashcard.WithRand(rand.New(rand.NewPCG(9, 9))))
	d.Shuffle()

	ordered := d.Ordered()
	order := d.Order()
	cards := d.Cards()
	for i, idx := range order {
		assert.Equal(t, cards[idx], ordered[i])
	}
}
