package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIDEmpty(t *testing.T) {
	assert.Equal(t, "001", nextID(nil))
	assert.Equal(t, "001", nextID([]string{}))
}

func TestNextIDSequential(t *testing.T) {
	assert.Equal(t, "002", nextID([]string{"001"}))
	assert.Equal(t, "004", nextID([]string{"001", "002", "003"}))
}

// The regression that motivated numeric comparison: a string sort would pick
// "003" as the max of this set and hand out "004", colliding with "010".
func TestNextIDNumericNotLexicographic(t *testing.T) {
	assert.Equal(t, "011", nextID([]string{"003", "010", "002"}))
}

func TestNextIDIgnoresNonNumeric(t *testing.T) {
	assert.Equal(t, "006", nextID([]string{"005", "abc", "64f1c0ffee"}))
	assert.Equal(t, "001", nextID([]string{"abc", "def"}))
}

func TestNextIDGrowsPastPadding(t *testing.T) {
	assert.Equal(t, "1000", nextID([]string{"999"}))
	assert.Equal(t, "1001", nextID([]string{"1000", "002"}))
}

func TestNextIDUnordered(t *testing.T) {
	assert.Equal(t, "100", nextID([]string{"042", "099", "007"}))
}
