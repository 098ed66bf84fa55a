package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeysAreOrdered(t *testing.T) {
	m := map[string]int{"V": 7, "I": 0, "IV": 5}

	assert := assert.New(t)
	assert.Equal([]string{"I", "IV", "V"}, SortedKeys(m))
}

func TestSortedKeysOfEmptyMap(t *testing.T) {
	assert.Empty(t, SortedKeys(map[int]bool{}))
}
