package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}

func TestPages(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		wantTokens []string
	}{
		{
			name:       "middle page of ten",
			current:    5,
			total:      10,
			wantTokens: []string{"1", "...", "3", "4", "5", "6", "7", "...", "10"},
		},
		{
			name:       "three pages without gaps",
			current:    1,
			total:      3,
			wantTokens: []string{"1", "2", "3"},
		},
		{
			name:       "first page of ten",
			current:    1,
			total:      10,
			wantTokens: []string{"1", "2", "3", "...", "10"},
		},
		{
			name:       "last page of ten",
			current:    10,
			total:      10,
			wantTokens: []string{"1", "...", "8", "9", "10"},
		},
		{
			name:       "window touches first page",
			current:    4,
			total:      10,
			wantTokens: []string{"1", "2", "3", "4", "5", "6", "...", "10"},
		},
		{
			name:       "two pages",
			current:    2,
			total:      2,
			wantTokens: []string{"1", "2"},
		},
		{
			name:       "current beyond total is clamped",
			current:    42,
			total:      5,
			wantTokens: []string{"1", "...", "3", "4", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTokens, render(Pages(tt.current, tt.total)))
		})
	}
}

func TestPages_NoControls(t *testing.T) {
	assert.Nil(t, Pages(1, 1))
	assert.Nil(t, Pages(1, 0))
	assert.Nil(t, Pages(3, -1))
}

func TestPages_NoConsecutiveEllipses(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			tokens := Pages(current, total)
			for i := 1; i < len(tokens); i++ {
				assert.False(t, tokens[i].Ellipsis && tokens[i-1].Ellipsis,
					"consecutive ellipses for current=%d total=%d", current, total)
			}
			assert.Equal(t, tokens, Pages(current, total))
		}
	}
}

func TestToken_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Pages(5, 10))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"...",3,4,5,6,7,"...",10]`, string(data))
}
