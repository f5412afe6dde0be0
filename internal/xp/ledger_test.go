package xp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/audaroky/internal/entities"
	"github.com/mrlokans/audaroky/internal/kvstore"
)

func TestLedger_GetDefaultsToZero(t *testing.T) {
	l := NewLedger(kvstore.NewMemoryStore(), nil)
	total, err := l.Get()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestLedger_Add(t *testing.T) {
	store := kvstore.NewMemoryStore()
	l := NewLedger(store, nil)

	total, err := l.Add(RewardWord)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = l.Add(RewardTest)
	require.NoError(t, err)
	assert.Equal(t, 101, total)

	raw, _, err := store.Get(entities.KeyXP)
	require.NoError(t, err)
	assert.Equal(t, "101", raw)
}

func TestLedger_AddRejectsNonPositive(t *testing.T) {
	l := NewLedger(kvstore.NewMemoryStore(), nil)
	for _, amount := range []int{0, -5} {
		_, err := l.Add(amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	total, _ := l.Get()
	assert.Zero(t, total)
}

func TestLedger_CorruptValue(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(entities.KeyXP, "lots"))

	l := NewLedger(store, nil)
	_, err := l.Get()
	assert.Error(t, err)
	_, err = l.Add(1)
	assert.Error(t, err)
}

func TestLedger_ConcurrentAdds(t *testing.T) {
	l := NewLedger(kvstore.NewMemoryStore(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Add(RewardSentence)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	total, err := l.Get()
	require.NoError(t, err)
	assert.Equal(t, 250, total)
}

func TestLedger_Subscribe(t *testing.T) {
	l := NewLedger(kvstore.NewMemoryStore(), nil)

	events, cancel := l.Subscribe()
	_, err := l.Add(RewardChapter)
	require.NoError(t, err)

	ev := <-events
	assert.Equal(t, Event{Delta: 50, Total: 50}, ev)

	cancel()
	cancel()
	_, open := <-events
	assert.False(t, open)

	_, err = l.Add(1)
	require.NoError(t, err)
}

func TestLedger_SlowSubscriberDoesNotBlock(t *testing.T) {
	l := NewLedger(kvstore.NewMemoryStore(), nil)
	events, cancel := l.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer*2; i++ {
		_, err := l.Add(1)
		require.NoError(t, err)
	}
	assert.Len(t, events, subscriberBuffer)

	total, _ := l.Get()
	assert.Equal(t, subscriberBuffer*2, total)
}
