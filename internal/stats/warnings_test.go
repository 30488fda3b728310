package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningsKeepInsertionOrder(t *testing.T) {
	var w Warnings
	w.Add("b")
	w.Addf("%s-%d", "a", 1)
	w.Add("b")

	assert.Equal(t, []string{"b", "a-1", "b"}, w.All())
	assert.Equal(t, 3, w.Len())
}
