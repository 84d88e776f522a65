package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/preset"
)

const MaxCount = 100

var (
	ErrLengthTooLong   = errors.New("password length exceeds the configured maximum")
	ErrCountOutOfRange = fmt.Errorf("count must be between 1 and %d", MaxCount)
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	defaultLength int
	maxLength     int
}

// NewGeneratorService creates a new GeneratorService. A non-positive
// maxLength disables the upper bound.
func NewGeneratorService(defaultLength, maxLength int) *GeneratorService {
	if defaultLength <= 0 {
		defaultLength = crypto.DefaultRequest().Length
	}
	return &GeneratorService{
		defaultLength: defaultLength,
		maxLength:     maxLength,
	}
}

// Request resolves an API request into a core request: missing class flags
// default to true, a missing length takes the configured default and a named
// complexity overrides the flags. An explicit length is passed through as is.
func (s *GeneratorService) Request(req model.GenerateRequest) (crypto.Request, error) {
	out := crypto.Request{
		Length:     intOrDefault(req.Length, s.defaultLength),
		UseLetters: boolOrDefault(req.Letters, true),
		UseNumbers: boolOrDefault(req.Numbers, true),
		UseSymbols: boolOrDefault(req.Symbols, true),
		Exclude:    req.Exclude,
	}

	level, err := preset.Parse(req.Complexity)
	if err != nil {
		return crypto.Request{}, err
	}
	preset.Apply(level, &out)

	return out, nil
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	creq, err := s.Request(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	if s.maxLength > 0 && creq.Length > s.maxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	src := crypto.SecureSource
	if req.Seed != nil {
		seeded, err := crypto.NewSeededSource(*req.Seed)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		src = seeded
	}

	passwords := make([]string, 0, count)
	for range count {
		password, err := crypto.Generate(creq, src)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, password)
	}

	resp := model.GenerateResponse{
		Password: passwords[0],
		Length:   len(passwords[0]),
	}
	if count > 1 {
		resp.Passwords = passwords
	}
	return resp, nil
}

// Presets describes every complexity level.
func (s *GeneratorService) Presets() []model.PresetResponse {
	levels := preset.All()
	out := make([]model.PresetResponse, 0, len(levels))
	for _, level := range levels {
		var req crypto.Request
		if level == preset.Custom {
			req = crypto.DefaultRequest()
		}
		preset.Apply(level, &req)
		out = append(out, model.PresetResponse{
			Name:    string(level),
			Letters: req.UseLetters,
			Numbers: req.UseNumbers,
			Symbols: req.UseSymbols,
		})
	}
	return out
}

// IsValidationError reports whether err was caused by bad input rather than
// an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrNoClassSelected) ||
		errors.Is(err, crypto.ErrEmptyPool) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrCountOutOfRange) ||
		errors.Is(err, preset.ErrUnknownComplexity)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
