package model

// CheckResponse is the outcome of checking a password, plus a replacement
// suggestion when the password falls short of any criterion.
type CheckResponse struct {
	Strength          string   `json:"strength"`
	Score             int      `json:"score"`
	Suggestions       []string `json:"suggestions"`
	SuggestedPassword string   `json:"suggested_password,omitempty"`
}

// GenerateResponse represents a generated password suggestion.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
