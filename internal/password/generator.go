// Package password scores passwords against five composition criteria and
// generates replacement suggestions that meet all of them.
//
// Generated passwords come from a seedable pseudorandom stream. They are
// meant as suggestions shown to a user; callers that need secrets for direct
// security use should draw from crypto/rand instead.
package password

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

const (
	SuggestedMinLength = 12
	SuggestedMaxLength = 16
)

// requirements is the guaranteed minimum per character class. Positions
// beyond these are filled from the full alphabet.
var requirements = []struct {
	charset string
	count   int
}{
	{uppercaseChars, 2},
	{lowercaseChars, 4},
	{digitChars, 2},
	{SpecialChars, 2},
}

// Generator produces suggested passwords. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator drawing from src. A nil src is replaced by
// a ChaCha8 stream seeded from crypto/rand.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		var seed [32]byte
		// crypto/rand.Read never returns an error since Go 1.24.
		crand.Read(seed[:])
		src = rand.NewChaCha8(seed)
	}
	return &Generator{rnd: rand.New(src)}
}

// NewSeededGenerator returns a Generator whose output is fully determined by
// seed.
func NewSeededGenerator(seed uint64) *Generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return NewGenerator(rand.NewChaCha8(key))
}

// Generate returns a password of 12 to 16 characters that meets every
// criterion checked by Assess.
func (g *Generator) Generate() string {
	length := SuggestedMinLength + g.rnd.IntN(SuggestedMaxLength-SuggestedMinLength+1)

	result := make([]byte, 0, length)

	// Guarantee the per-class minimums first.
	for _, req := range requirements {
		for i := 0; i < req.count; i++ {
			result = append(result, g.randChar(req.charset))
		}
	}

	// Pad up to the chosen length from the full alphabet.
	for len(result) < length {
		result = append(result, g.randChar(allChars))
	}

	g.rnd.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	return string(result)
}

// randChar picks a uniformly random byte from charset.
func (g *Generator) randChar(charset string) byte {
	return charset[g.rnd.IntN(len(charset))]
}
