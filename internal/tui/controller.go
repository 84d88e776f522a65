package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/preset"
)

const (
	MinLength     = crypto.MinLength
	MaxLength     = 32
	DefaultLength = 12
)

var ErrInvalidLength = fmt.Errorf("length must be a whole number no greater than %d", MaxLength)

// Copier is the clipboard side of the form.
type Copier interface {
	Copy(text string) error
}

// State is everything the form collects before a generation.
type State struct {
	Complexity preset.Complexity
	Length     int
	Letters    bool
	Numbers    bool
	Symbols    bool
	Exclude    string
}

// DefaultState matches the form's initial widgets.
func DefaultState() State {
	return State{
		Complexity: preset.Custom,
		Length:     DefaultLength,
		Letters:    true,
		Numbers:    true,
		Symbols:    true,
	}
}

// Request converts the form state into a generation request.
func (s State) Request() crypto.Request {
	return crypto.Request{
		Length:     s.Length,
		UseLetters: s.Letters,
		UseNumbers: s.Numbers,
		UseSymbols: s.Symbols,
		Exclude:    s.Exclude,
	}
}

// Controller owns the form state and the last generated password.
type Controller struct {
	State State

	src       crypto.Source
	copier    Copier
	last      string
	lengthErr error
}

func NewController(src crypto.Source, copier Copier) *Controller {
	return &Controller{
		State:  DefaultState(),
		src:    src,
		copier: copier,
	}
}

// SetComplexity records the level and updates the class flags it implies.
func (c *Controller) SetComplexity(level preset.Complexity) {
	c.State.Complexity = level
	req := c.State.Request()
	preset.Apply(level, &req)
	c.State.Letters, c.State.Numbers, c.State.Symbols = req.UseLetters, req.UseNumbers, req.UseSymbols
}

// SetLength parses the length field. Until the field parses again, Generate
// fails with the same error instead of using a stale length.
func (c *Controller) SetLength(text string) error {
	n, err := ParseLength(text)
	c.lengthErr = err
	if err != nil {
		return err
	}
	c.State.Length = n
	return nil
}

// Generate produces a password from the current state. The previous
// password is kept when generation fails.
func (c *Controller) Generate() (string, error) {
	if c.lengthErr != nil {
		return "", c.lengthErr
	}
	password, err := crypto.Generate(c.State.Request(), c.src)
	if err != nil {
		return "", err
	}
	c.last = password
	return password, nil
}

// Copy puts the last generated password on the clipboard.
func (c *Controller) Copy() error {
	if c.last == "" {
		return clipboard.ErrNothingToCopy
	}
	return c.copier.Copy(c.last)
}

// Last returns the most recently generated password.
func (c *Controller) Last() string {
	return c.last
}

// ParseLength accepts whole numbers up to MaxLength. Values below MinLength
// are passed through so the generator reports them.
func ParseLength(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n > MaxLength {
		return 0, ErrInvalidLength
	}
	return n, nil
}

// Message turns an error into the text shown in the status line.
func Message(err error) string {
	switch {
	case errors.Is(err, crypto.ErrLengthTooShort):
		return "Password length should be at least 4."
	case errors.Is(err, crypto.ErrNoClassSelected):
		return "Please select at least one character type."
	case errors.Is(err, crypto.ErrEmptyPool):
		return "Character pool is empty after exclusions!"
	case errors.Is(err, clipboard.ErrNothingToCopy):
		return "Generate a password first."
	case errors.Is(err, ErrInvalidLength):
		return fmt.Sprintf("Length must be between %d and %d.", MinLength, MaxLength)
	}
	return err.Error()
}
