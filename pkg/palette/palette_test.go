package palette

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorCode(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Reset, "\x1b[0m"},
		{Green, "\x1b[32m"},
		{Cyan, "\x1b[36m"},
	}
	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.color.Code())
		})
	}
}

func TestPaint(t *testing.T) {
	t.Run("always wraps in color and reset", func(t *testing.T) {
		p := NewPainter(ModeAlways)
		require.True(t, p.Enabled())
		require.Equal(t, Cyan.Code()+"1.1 200 OK"+Reset.Code(), p.Paint(Cyan, "1.1 200 OK"))
		require.Equal(t, Green.Code()+"HTTP"+Reset.Code(), p.Paint(Green, "HTTP"))
	})
	t.Run("never returns input unchanged", func(t *testing.T) {
		p := NewPainter(ModeNever)
		require.False(t, p.Enabled())
		require.Equal(t, "HTTP", p.Paint(Green, "HTTP"))
	})
}
