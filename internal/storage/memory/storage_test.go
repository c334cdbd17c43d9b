package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blackjack/internal/model"
)

func TestSaveAndLoadPlayer(t *testing.T) {
	s := New()
	ctx := context.Background()

	player := &model.Player{Name: "Ann", Wealth: 42}
	require.NoError(t, s.SavePlayer(ctx, player))

	// Later mutation must not leak into the stored copy
	player.Wealth = 0

	loaded, err := s.LoadPlayer(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Wealth(42), loaded.Wealth)
}

func TestLoadPlayerNotFound(t *testing.T) {
	_, err := New().LoadPlayer(context.Background())
	assert.ErrorIs(t, err, model.ErrSaveNotFound)
}

func TestFailSaves(t *testing.T) {
	s := New()
	s.FailSaves = errors.New("disk full")

	err := s.SavePlayer(context.Background(), &model.Player{Name: "Ann"})
	assert.EqualError(t, err, "disk full")
}
