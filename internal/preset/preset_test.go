package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge-go/internal/crypto"
)

func TestApply(t *testing.T) {
	tests := []struct {
		level                     Complexity
		letters, numbers, symbols bool
	}{
		{Low, true, false, false},
		{Medium, true, true, false},
		{High, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			req := crypto.Request{Length: 10, UseSymbols: true, Exclude: "abc"}
			Apply(tt.level, &req)

			assert.Equal(t, tt.letters, req.UseLetters)
			assert.Equal(t, tt.numbers, req.UseNumbers)
			assert.Equal(t, tt.symbols, req.UseSymbols)
			assert.Equal(t, 10, req.Length)
			assert.Equal(t, "abc", req.Exclude)
		})
	}
}

func TestApplyCustomLeavesFlags(t *testing.T) {
	req := crypto.Request{Length: 10, UseNumbers: true}
	Apply(Custom, &req)

	assert.Equal(t, crypto.Request{Length: 10, UseNumbers: true}, req)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Complexity
	}{
		{"low", Low},
		{"MEDIUM", Medium},
		{" High ", High},
		{"custom", Custom},
		{"", Custom},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("extreme")
	assert.ErrorIs(t, err, ErrUnknownComplexity)
}

func TestAllOrder(t *testing.T) {
	assert.Equal(t, []Complexity{Low, Medium, High, Custom}, All())
}
