// Package preset maps named complexity levels onto character class selections.
package preset

import (
	"errors"
	"strings"

	"github.com/passforge/passforge-go/internal/crypto"
)

var ErrUnknownComplexity = errors.New("complexity must be one of low, medium, high, custom")

// Complexity is a named shortcut for a set of enabled character classes.
type Complexity string

const (
	Low    Complexity = "Low"
	Medium Complexity = "Medium"
	High   Complexity = "High"
	Custom Complexity = "Custom"
)

// All returns the levels in display order.
func All() []Complexity {
	return []Complexity{Low, Medium, High, Custom}
}

// Parse matches s case-insensitively. An empty string means Custom.
func Parse(s string) (Complexity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Custom, nil
	}
	for _, c := range All() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", ErrUnknownComplexity
}

// Apply sets the class flags of req for c. Custom leaves req untouched.
func Apply(c Complexity, req *crypto.Request) {
	switch c {
	case Low:
		req.UseLetters, req.UseNumbers, req.UseSymbols = true, false, false
	case Medium:
		req.UseLetters, req.UseNumbers, req.UseSymbols = true, true, false
	case High:
		req.UseLetters, req.UseNumbers, req.UseSymbols = true, true, true
	}
}
