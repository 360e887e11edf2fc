package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("first page of a full set", func(t *testing.T) {
		p := Resolve(25, 1, 10)
		assert.Equal(t, 0, p.Offset)
		assert.Equal(t, 3, p.Pages)
		assert.Equal(t, 25, p.Total)
	})

	t.Run("offset follows (page-1)*size", func(t *testing.T) {
		p := Resolve(100, 4, 12)
		assert.Equal(t, 36, p.Offset)
	})

	t.Run("pages is ceil(total/size)", func(t *testing.T) {
		assert.Equal(t, 1, Resolve(1, 1, 12).Pages)
		assert.Equal(t, 1, Resolve(12, 1, 12).Pages)
		assert.Equal(t, 2, Resolve(13, 1, 12).Pages)
	})

	t.Run("page past the end stays bounded", func(t *testing.T) {
		p := Resolve(30, 1<<30, 10)
		assert.Equal(t, 3, p.Pages)
		assert.GreaterOrEqual(t, p.Offset, p.Total)
		assert.LessOrEqual(t, p.Offset, p.Total+p.Size)
	})

	t.Run("non-positive page is treated as the first", func(t *testing.T) {
		assert.Equal(t, 0, Resolve(30, 0, 10).Offset)
		assert.Equal(t, 0, Resolve(30, -3, 10).Offset)
	})

	t.Run("empty set", func(t *testing.T) {
		p := Resolve(0, 1, 10)
		assert.Equal(t, 0, p.Pages)
		assert.Equal(t, 0, p.Offset)
	})
}
