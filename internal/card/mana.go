package card

import "strings"

func isColor(b byte) bool {
	return strings.IndexByte("WUBRG", b) >= 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// TokenizeManaCost converts a symbol-concatenated Cockatrice mana string to
// space-separated Forge symbols: "1BB" → "1 B B", "2U/B" → "2 U/B". Hybrid
// pairs (color, slash, color) stay one symbol; anything unrecognized is
// skipped.
func TokenizeManaCost(mana string) string {
	var symbols []string
	for i := 0; i < len(mana); {
		switch {
		case i+2 < len(mana) && isDigit(mana[i]) && isColor(mana[i+1]) && mana[i+2] == '/':
			// Generic cost directly before a hybrid pair: take the digit
			// alone so the pair is tokenized next.
			symbols = append(symbols, string(mana[i]))
			i++
		case i+2 < len(mana) && isColor(mana[i]) && mana[i+1] == '/' && isColor(mana[i+2]):
			symbols = append(symbols, mana[i:i+3])
			i += 3
		case isColor(mana[i]) || isDigit(mana[i]):
			symbols = append(symbols, string(mana[i]))
			i++
		default:
			i++
		}
	}
	return strings.Join(symbols, " ")
}
