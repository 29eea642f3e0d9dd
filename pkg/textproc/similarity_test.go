package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccard(t *testing.T) {
	t.Run("identical sets", func(t *testing.T) {
		a := RawWords("the cat sat on the mat")
		assert.InDelta(t, 1.0, Jaccard(a, a), 1e-9)
	})

	t.Run("disjoint sets", func(t *testing.T) {
		assert.Zero(t, Jaccard([]string{"alpha", "beta"}, []string{"gamma", "delta"}))
	})

	t.Run("either set empty yields zero", func(t *testing.T) {
		assert.Zero(t, Jaccard(nil, []string{"word"}))
		assert.Zero(t, Jaccard([]string{"word"}, nil))
		assert.Zero(t, Jaccard(nil, nil))
	})

	t.Run("partial overlap", func(t *testing.T) {
		a := []string{"react", "hooks", "state"}
		b := []string{"react", "hooks", "props"}
		// 2 shared of 4 distinct
		assert.InDelta(t, 0.5, Jaccard(a, b), 1e-9)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		a := []string{"word", "word", "word"}
		b := []string{"word"}
		assert.InDelta(t, 1.0, Jaccard(a, b), 1e-9)
	})
}

func TestOverlap(t *testing.T) {
	t.Run("relative overlap uses smaller set", func(t *testing.T) {
		a := []string{"pasta", "food", "favorite", "dinner"}
		b := []string{"pasta", "wine"}
		shared, relative := Overlap(a, b)
		assert.Equal(t, 1, shared)
		assert.InDelta(t, 0.5, relative, 1e-9)
	})

	t.Run("empty set", func(t *testing.T) {
		shared, relative := Overlap(nil, []string{"x"})
		assert.Zero(t, shared)
		assert.Zero(t, relative)
	})
}
