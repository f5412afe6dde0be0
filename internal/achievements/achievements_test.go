package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
	"github.com/mrlokans/audaroky/internal/xp"
)

type fixture struct {
	store  *kvstore.MemoryStore
	ledger *xp.Ledger
	stats  *StatsStore
	engine *Engine
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	ledger := xp.NewLedger(store, nil)
	stats := NewStatsStore(store, ledger)
	return fixture{
		store:  store,
		ledger: ledger,
		stats:  stats,
		engine: NewEngine(store, stats, ledger, nil),
	}
}

func ids(as []entities.Achievement) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

func TestCatalog(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 13)
	assert.Equal(t, "first_word", catalog[0].ID)
	assert.Equal(t, "xp_1000", catalog[12].ID)

	seen := map[string]bool{}
	for _, a := range catalog {
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.NotNil(t, a.Predicate)
		assert.Positive(t, a.XPReward)
		assert.False(t, a.Predicate(entities.UserStats{}), "%s unlocked for a new user", a.ID)
	}
}

func TestStatsStore(t *testing.T) {
	f := newFixture(t)

	stats, err := f.stats.Get()
	require.NoError(t, err)
	assert.Equal(t, entities.UserStats{}, stats)

	_, err = f.ledger.Add(42)
	require.NoError(t, err)

	stats, err = f.stats.Increment(entities.StatWordsTranslated, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.WordsTranslated)
	assert.Equal(t, 42, stats.TotalXP)

	raw, _, err := f.store.Get(entities.KeyStats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wordsTranslated":2,"sentencesTranslated":0,"booksCompleted":0,"testsPassed":0,"totalXP":42,"streakDays":0,"minutesSpent":0}`, raw)

	_, err = f.stats.Increment("totalXP", 1)
	assert.ErrorIs(t, err, ErrUnknownStat)
	_, err = f.stats.Increment(entities.StatTestsPassed, -1)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	saved, err := f.stats.Save(entities.UserStats{BooksCompleted: 1, TotalXP: 9999})
	require.NoError(t, err)
	assert.Equal(t, 42, saved.TotalXP, "total xp always follows the ledger")
}

func TestEngine_FirstWordScenario(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.Add(xp.RewardWord)
	require.NoError(t, err)
	stats, err := f.stats.Increment(entities.StatWordsTranslated, 1)
	require.NoError(t, err)

	unlocked, err := f.engine.Check(stats)
	require.NoError(t, err)
	assert.Equal(t, []string{"first_word"}, ids(unlocked))

	total, err := f.ledger.Get()
	require.NoError(t, err)
	assert.Equal(t, 11, total)

	stored, err := f.engine.Unlocked()
	require.NoError(t, err)
	assert.Equal(t, []string{"first_word"}, stored)

	stats, err = f.stats.Get()
	require.NoError(t, err)
	assert.Equal(t, 11, stats.TotalXP)
}

func TestEngine_Monotonic(t *testing.T) {
	f := newFixture(t)
	stats := entities.UserStats{WordsTranslated: 1}

	first, err := f.engine.Check(stats)
	require.NoError(t, err)
	assert.Len(t, first, 1)

	for i := 0; i < 3; i++ {
		again, err := f.engine.Check(stats)
		require.NoError(t, err)
		assert.Empty(t, again)
	}

	// Stats going down never relocks anything.
	again, err := f.engine.Check(entities.UserStats{})
	require.NoError(t, err)
	assert.Empty(t, again)

	stored, err := f.engine.Unlocked()
	require.NoError(t, err)
	assert.Equal(t, []string{"first_word"}, stored)

	total, err := f.ledger.Get()
	require.NoError(t, err)
	assert.Equal(t, 10, total, "reward granted exactly once")
}

func TestEngine_CatalogOrderAndCascade(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.Add(80)
	require.NoError(t, err)

	stats := entities.UserStats{WordsTranslated: 10, TestsPassed: 1, TotalXP: 80}
	unlocked, err := f.engine.Check(stats)
	require.NoError(t, err)

	// 80 + 10 + 25 + 30 = 145 crosses 100, so xp_100 follows in a second round.
	assert.Equal(t, []string{"first_word", "word_master_10", "first_test", "xp_100"}, ids(unlocked))

	total, err := f.ledger.Get()
	require.NoError(t, err)
	assert.Equal(t, 165, total)

	stored, err := f.engine.Unlocked()
	require.NoError(t, err)
	assert.Equal(t, ids(unlocked), stored)
}

func TestEngine_Refresh(t *testing.T) {
	f := newFixture(t)
	_, err := f.stats.Update(func(s *entities.UserStats) { s.StreakDays = 3 })
	require.NoError(t, err)

	unlocked, err := f.engine.Refresh()
	require.NoError(t, err)
	assert.Equal(t, []string{"streak_3"}, ids(unlocked))
}

func TestEngine_CustomCatalog(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ledger := xp.NewLedger(store, nil)
	engine := NewEngine(store, nil, ledger, nil, WithCatalog([]entities.Achievement{
		{ID: "any", XPReward: 0, Predicate: func(entities.UserStats) bool { return true }},
	}))

	unlocked, err := engine.Check(entities.UserStats{})
	require.NoError(t, err)
	assert.Equal(t, []string{"any"}, ids(unlocked))

	total, _ := ledger.Get()
	assert.Zero(t, total)
	assert.Len(t, engine.Catalog(), 1)
}

func TestEngine_CorruptUnlockedList(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(entities.KeyAchievements, "{"))

	_, err := f.engine.Check(entities.UserStats{WordsTranslated: 1})
	assert.Error(t, err)
}
