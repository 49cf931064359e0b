package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_SortByRank(t *testing.T) {
	h := CardsFromString("3s,2h,14c,2c")
	sorted := h.SortByRank()
	assert.Equal(t, "14c,3s,2c,2h", sorted.String())
	assert.Equal(t, "3s,2h,14c,2c", h.String(), "original untouched")
}

func TestHand_HasCard(t *testing.T) {
	h := CardsFromString("3s,2h")
	assert.True(t, h.HasCard(CardFromString("2h")))
	assert.False(t, h.HasCard(CardFromString("2s")))
}

func TestHand_HasDuplicates(t *testing.T) {
	assert.False(t, CardsFromString("3s,2h").HasDuplicates())
	assert.True(t, CardsFromString("3s,2h,3s").HasDuplicates())
}

func TestJoin(t *testing.T) {
	h := Join(CardsFromString("3s,2h"), nil, CardsFromString("9d"))
	assert.Equal(t, "3s,2h,9d", h.String())
}
