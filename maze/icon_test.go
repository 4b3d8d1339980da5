package maze

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIcon(t *testing.T) {
	t.Run("background markers and blank lines", func(t *testing.T) {
		icon, err := ParseIcon("\n1 0x\n\n#00#\n")
		require.NoError(t, err)
		assert.Equal(t, 4, icon.Width())
		assert.Equal(t, 2, icon.Height())

		assert.True(t, icon.On(0, 0))
		assert.False(t, icon.On(1, 0))
		assert.False(t, icon.On(2, 0))
		assert.True(t, icon.On(3, 0))
		assert.True(t, icon.On(0, 1))
		assert.False(t, icon.On(1, 1))
	})

	t.Run("ragged rows are rejected", func(t *testing.T) {
		_, err := ParseIcon("111\n11\n")
		assert.True(t, errors.Is(err, ErrIconMalformed))

		var constructionErr *ConstructionError
		assert.True(t, errors.As(err, &constructionErr))
	})

	t.Run("empty text gives an empty icon", func(t *testing.T) {
		icon, err := ReadIcon(strings.NewReader("\n\n"))
		require.NoError(t, err)
		assert.True(t, icon.Empty())
	})

	t.Run("default icon", func(t *testing.T) {
		assert.Equal(t, 7, DefaultIcon.Width())
		assert.Equal(t, 5, DefaultIcon.Height())
	})
}
