package password

import (
	"strings"
	"unicode/utf8"
)

// MinLength is the shortest password that satisfies the length criterion.
const MinLength = 8

// Strength is the coarse label derived from a score.
type Strength string

const (
	Weak   Strength = "Weak"
	Medium Strength = "Medium"
	Strong Strength = "Strong"
)

// Criterion is one of the five composition checks.
type Criterion int

const (
	CriterionLength Criterion = iota
	CriterionUppercase
	CriterionLowercase
	CriterionDigit
	CriterionSpecial
)

// Criteria lists every criterion in evaluation order.
var Criteria = []Criterion{
	CriterionLength,
	CriterionUppercase,
	CriterionLowercase,
	CriterionDigit,
	CriterionSpecial,
}

// MaxScore is the score of a password that meets every criterion.
const MaxScore = 5

var criterionNames = [...]string{
	CriterionLength:    "length",
	CriterionUppercase: "uppercase",
	CriterionLowercase: "lowercase",
	CriterionDigit:     "digit",
	CriterionSpecial:   "special",
}

var suggestions = [...]string{
	CriterionLength:    "Increase the length to at least 8 characters.",
	CriterionUppercase: "Add at least one uppercase letter (A-Z).",
	CriterionLowercase: "Add at least one lowercase letter (a-z).",
	CriterionDigit:     "Include at least one digit (0-9).",
	CriterionSpecial:   "Use at least one special character (" + SpecialChars + ").",
}

func (c Criterion) String() string {
	if c < 0 || int(c) >= len(criterionNames) {
		return "unknown"
	}
	return criterionNames[c]
}

// Suggestion returns the remediation text shown when c is not met.
func (c Criterion) Suggestion() string {
	if c < 0 || int(c) >= len(suggestions) {
		return ""
	}
	return suggestions[c]
}

// Met reports whether password satisfies c.
func (c Criterion) Met(password string) bool {
	switch c {
	case CriterionLength:
		return utf8.RuneCountInString(password) >= MinLength
	case CriterionUppercase:
		return strings.ContainsAny(password, uppercaseChars)
	case CriterionLowercase:
		return strings.ContainsAny(password, lowercaseChars)
	case CriterionDigit:
		return strings.ContainsAny(password, digitChars)
	case CriterionSpecial:
		return strings.ContainsAny(password, SpecialChars)
	}
	return false
}

// Assessment is the result of evaluating a password.
type Assessment struct {
	Strength    Strength
	Score       int
	Suggestions []string
	Unmet       []Criterion
}

// StrengthForScore maps a score to its label: all five criteria are needed
// for Strong, three or four give Medium, anything less is Weak.
func StrengthForScore(score int) Strength {
	switch {
	case score >= MaxScore:
		return Strong
	case score >= 3:
		return Medium
	default:
		return Weak
	}
}

// Assess evaluates password against every criterion. Any string is valid
// input; the empty string simply scores zero.
func Assess(password string) Assessment {
	a := Assessment{
		Suggestions: make([]string, 0, len(Criteria)),
	}

	for _, c := range Criteria {
		if c.Met(password) {
			a.Score++
			continue
		}
		a.Unmet = append(a.Unmet, c)
		a.Suggestions = append(a.Suggestions, c.Suggestion())
	}

	a.Strength = StrengthForScore(a.Score)
	return a
}
