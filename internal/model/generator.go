package model

// GenerateRequest represents a password generation request.
// Pointers distinguish a missing field from an explicit zero value: a nil
// Length takes the configured default and nil class flags default to true.
type GenerateRequest struct {
	Length     *int    `json:"length"`
	Letters    *bool   `json:"letters"`
	Numbers    *bool   `json:"numbers"`
	Symbols    *bool   `json:"symbols"`
	Exclude    string  `json:"exclude"`
	Complexity string  `json:"complexity"`
	Count      int     `json:"count"`
	Seed       *uint64 `json:"seed,omitempty"`
}

// GenerateResponse represents a password generation response.
// Passwords is only populated when more than one password was requested.
type GenerateResponse struct {
	Password  string   `json:"password"`
	Passwords []string `json:"passwords,omitempty"`
	Length    int      `json:"length"`
}

// PresetResponse describes the classes a complexity level enables.
type PresetResponse struct {
	Name    string `json:"name"`
	Letters bool   `json:"letters"`
	Numbers bool   `json:"numbers"`
	Symbols bool   `json:"symbols"`
}
