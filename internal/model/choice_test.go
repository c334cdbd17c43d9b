package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMenuChoice(t *testing.T) {
	for n, want := range map[uint8]MenuChoice{1: MenuNewGame, 2: MenuContinue, 3: MenuExit} {
		got, err := ParseMenuChoice(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, n := range []uint8{0, 4, 255} {
		_, err := ParseMenuChoice(n)
		assert.ErrorIs(t, err, ErrInvalidChoice)
	}
}

func TestParseAction(t *testing.T) {
	got, err := ParseAction(1)
	require.NoError(t, err)
	assert.Equal(t, ActionHit, got)
	assert.Equal(t, "hit", got.String())

	_, err = ParseAction(9)
	assert.ErrorIs(t, err, ErrInvalidChoice)
}
