package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Ann")
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, StartingWealth, p.Wealth)

	assert.Equal(t, DefaultPlayerName, NewPlayer("").Name)
}

func TestDebitSaturatesAtZero(t *testing.T) {
	p := &Player{Wealth: 5}
	p.Debit(3)
	assert.Equal(t, Wealth(2), p.Wealth)

	p.Debit(10)
	assert.Equal(t, Wealth(0), p.Wealth)
	assert.True(t, p.IsBankrupt())
	assert.False(t, p.CanPlay())
}

func TestCreditSaturatesAtMax(t *testing.T) {
	p := &Player{Wealth: MaxWealth - 10}
	p.Credit(4)
	assert.Equal(t, MaxWealth-6, p.Wealth)

	p.Credit(2 * uint32(MaxWealth))
	assert.Equal(t, MaxWealth, p.Wealth)
	assert.True(t, p.IsAtLimit())
	assert.False(t, p.CanPlay())
}

func TestCanAfford(t *testing.T) {
	p := &Player{Wealth: 10}
	assert.True(t, p.CanAfford(10))
	assert.False(t, p.CanAfford(11))
}
