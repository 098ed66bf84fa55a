package bag

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func domain12() []int {
	var d []int
	for i := 0; i < 12; i++ {
		d = append(d, i)
	}
	return d
}

func TestDrawsWholeDomainBeforeAnyRepeat(t *testing.T) {
	b := New(rand.New(rand.NewSource(1)), domain12())

	seen := make(map[int]bool)
	for i := 0; i < 12; i++ {
		seen[b.Draw()] = true
	}

	assert.Len(t, seen, 12)
}

func TestRefillsWithFullDomain(t *testing.T) {
	b := New(rand.New(rand.NewSource(2)), domain12())

	counts := make(map[int]int)
	for i := 0; i < 36; i++ {
		counts[b.Draw()]++
	}

	assert := assert.New(t)
	assert.Len(counts, 12)
	for v, n := range counts {
		assert.Equal(3, n, "value %v drawn %v times across 3 cycles", v, n)
	}
}

func TestRemainingCountsDownToRefill(t *testing.T) {
	b := New(rand.New(rand.NewSource(3)), []string{"Minor", "Major"})

	assert := assert.New(t)
	assert.Equal(0, b.Remaining())
	b.Draw()
	assert.Equal(1, b.Remaining())
	b.Draw()
	assert.Equal(0, b.Remaining())
}

func TestSingleValueDomain(t *testing.T) {
	b := New(rand.New(rand.NewSource(4)), []int{7})

	assert := assert.New(t)
	assert.Equal(7, b.Draw())
	assert.Equal(7, b.Draw())
}

func TestPanicsOnEmptyDomain(t *testing.T) {
	assert.Panics(t, func() { New(rand.New(rand.NewSource(5)), []int{}) })
}

func TestDomainIsCopied(t *testing.T) {
	domain := []int{1, 2, 3}
	b := New(rand.New(rand.NewSource(6)), domain)
	domain[0] = 99

	counts := make(map[int]int)
	for i := 0; i < 3; i++ {
		counts[b.Draw()]++
	}

	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, counts)
}
