package password

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"

	// SpecialChars is the set of characters that satisfy the special-character
	// criterion. The generator draws from the same set.
	SpecialChars = `!@#$%^&*(),.?":{}|<>`

	allChars = uppercaseChars + lowercaseChars + digitChars + SpecialChars
)
