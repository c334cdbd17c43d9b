package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/blackjack/internal/model"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		player model.Player
	}{
		{"ann", model.Player{Name: "Ann", Wealth: 42}},
		{"empty name bankrupt", model.Player{Name: "", Wealth: 0}},
		{"max wealth", model.Player{Name: "Bob", Wealth: model.MaxWealth}},
		{"unicode name", model.Player{Name: "Zoë ♠", Wealth: 300}},
		{"long name", model.Player{Name: strings.Repeat("x", 200), Wealth: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(&tt.player)
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, tt.player, *decoded)
		})
	}
}

func TestEncodeRejectsInvalidName(t *testing.T) {
	_, err := Encode(&model.Player{Name: string([]byte{0xff, 0xfe})})
	assert.Error(t, err)

	_, err = Encode(&model.Player{Name: strings.Repeat("x", MaxNameLength+1)})
	assert.Error(t, err)
}

func TestDecodeDetectsCorruption(t *testing.T) {
	data, err := Encode(&model.Player{Name: "Ann", Wealth: 42})
	require.NoError(t, err)

	t.Run("flipped byte", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-checksumSize-1] ^= 0x01
		_, err := Decode(bad)
		assert.ErrorIs(t, err, model.ErrSaveCorrupted)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Decode(data[:len(data)-1])
		assert.ErrorIs(t, err, model.ErrSaveCorrupted)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(nil)
		assert.ErrorIs(t, err, model.ErrSaveCorrupted)
	})
}
