package service

import (
	"log/slog"

	"github.com/vaultpass/passcheck/internal/model"
	"github.com/vaultpass/passcheck/internal/password"
)

// CheckerService assesses passwords and suggests replacements for weak ones.
type CheckerService struct {
	gen *password.Generator
}

// NewCheckerService creates a new CheckerService drawing suggestions from gen.
func NewCheckerService(gen *password.Generator) *CheckerService {
	return &CheckerService{gen: gen}
}

// Check assesses pwd. A suggested password is attached only when at least one
// criterion is unmet.
func (s *CheckerService) Check(pwd string) model.CheckResponse {
	a := password.Assess(pwd)

	resp := model.CheckResponse{
		Strength:    string(a.Strength),
		Score:       a.Score,
		Suggestions: a.Suggestions,
	}

	if len(a.Suggestions) > 0 {
		resp.SuggestedPassword = s.gen.Generate()
	}

	slog.Debug("password checked",
		"score", a.Score,
		"strength", a.Strength,
		"unmet", len(a.Unmet),
		"suggested", resp.SuggestedPassword != "",
	)

	return resp
}

// Suggest produces a standalone password suggestion.
func (s *CheckerService) Suggest() model.GenerateResponse {
	pwd := s.gen.Generate()
	return model.GenerateResponse{
		Password: pwd,
		Length:   len(pwd),
	}
}
