package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentClauses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "split on and",
			input: "500 on biryani and 400 on grocery",
			want:  []string{"500 on biryani", "400 on grocery"},
		},
		{
			name:  "split on comma",
			input: "500 on biryani, 400 on grocery",
			want:  []string{"500 on biryani", "400 on grocery"},
		},
		{
			name:  "uppercase and",
			input: "bread AND butter 50",
			want:  []string{"bread", "butter 50"},
		},
		{
			name:  "and inside a word is kept",
			input: "sandwich 50",
			want:  []string{"sandwich 50"},
		},
		{
			name:  "western grouping",
			input: "paid 100,000 to bank",
			want:  []string{"paid 100000 to bank"},
		},
		{
			name:  "indian grouping",
			input: "1,00,000 borrowed from bank",
			want:  []string{"100000 borrowed from bank"},
		},
		{
			name:  "crore grouping",
			input: "1,00,00,000 from bank",
			want:  []string{"10000000 from bank"},
		},
		{
			name:  "grouped numbers in several clauses",
			input: "12,345,678 to hari, 2,000 on tea",
			want:  []string{"12345678 to hari", "2000 on tea"},
		},
		{
			name:  "empty pieces dropped",
			input: "tea 10, , coffee 20 and ",
			want:  []string{"tea 10", "coffee 20"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentClauses(tt.input))
		})
	}
}
