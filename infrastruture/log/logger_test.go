package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Nil writer", func(t *testing.T) {
		l, err := New("APP", "", nil)
		assert.Error(t, err)
		assert.Nil(t, l)
	})

	t.Run("Prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("carved")
		l.Warning("slow")
		l.Error("boom")

		out := buf.String()
		assert.Contains(t, out, ColorCyan+"[MAZE]"+ColorReset)
		assert.Contains(t, out, ColorGreen+"[INFO]"+ColorReset+" carved")
		assert.Contains(t, out, ColorYellow+"[WARNING]"+ColorReset+" slow")
		assert.Contains(t, out, ColorRed+"[ERROR]"+ColorReset+" boom")
	})
}
