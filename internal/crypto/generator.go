package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	letterChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars = "0123456789"
	symbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	MinLength = 4
)

var (
	ErrLengthTooShort  = errors.New("password length must be at least 4")
	ErrNoClassSelected = errors.New("at least one character type must be selected")
	ErrEmptyPool       = errors.New("character pool is empty after exclusions")
)

// Class is a named character set a password can draw from.
type Class int

const (
	Letters Class = iota
	Numbers
	Symbols
)

// Alphabet returns the full reference alphabet of the class.
func (c Class) Alphabet() string {
	switch c {
	case Letters:
		return letterChars
	case Numbers:
		return numberChars
	case Symbols:
		return symbolChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Letters:
		return "letters"
	case Numbers:
		return "numbers"
	case Symbols:
		return "symbols"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Request describes a single password generation.
type Request struct {
	Length     int
	UseLetters bool
	UseNumbers bool
	UseSymbols bool
	// Exclude lists characters that must never appear in the output.
	Exclude string
}

// DefaultRequest returns 12 characters with every class enabled.
func DefaultRequest() Request {
	return Request{
		Length:     12,
		UseLetters: true,
		UseNumbers: true,
		UseSymbols: true,
	}
}

// Classes returns the enabled classes in pool order: letters, numbers, symbols.
func (r Request) Classes() []Class {
	var classes []Class
	if r.UseLetters {
		classes = append(classes, Letters)
	}
	if r.UseNumbers {
		classes = append(classes, Numbers)
	}
	if r.UseSymbols {
		classes = append(classes, Symbols)
	}
	return classes
}

// Pool returns the concatenated alphabets of the enabled classes with the
// excluded characters removed.
func (r Request) Pool() string {
	var sb strings.Builder
	for _, c := range r.Classes() {
		sb.WriteString(r.filter(c.Alphabet()))
	}
	return sb.String()
}

func (r Request) filter(charset string) string {
	if r.Exclude == "" {
		return charset
	}
	return strings.Map(func(ch rune) rune {
		if strings.ContainsRune(r.Exclude, ch) {
			return -1
		}
		return ch
	}, charset)
}

// Validate reports the first reason the request cannot produce a password.
func (r Request) Validate() error {
	if r.Length < MinLength {
		return ErrLengthTooShort
	}
	if len(r.Classes()) == 0 {
		return ErrNoClassSelected
	}
	if r.Pool() == "" {
		return ErrEmptyPool
	}
	return nil
}

// Generate creates a random password for req, drawing every random choice
// from src.
//
// Each enabled class contributes one mandatory character unless the
// exclusions remove its whole alphabet, in which case the class is skipped
// without error as long as the overall pool is non-empty.
func Generate(req Request, src Source) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	pool := req.Pool()
	result := make([]byte, 0, req.Length)

	// Guarantee at least one character from each selected type.
	for _, c := range req.Classes() {
		charset := req.filter(c.Alphabet())
		if charset == "" {
			continue
		}
		ch, err := randChar(src, charset)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Fill the remaining positions from the full pool.
	remaining := max(req.Length-len(result), 0)
	for range remaining {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a uniformly random character from charset.
func randChar(src Source, charset string) (byte, error) {
	n, err := src.Intn(len(charset))
	if err != nil {
		return 0, fmt.Errorf("drawing character: %w", err)
	}
	return charset[n], nil
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("shuffling: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
