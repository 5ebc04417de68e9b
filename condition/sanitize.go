package condition

import "strings"

// lookalikeRunes maps Unicode look-alikes that sometimes creep into AHB
// source text (copy-pasted from tables that mix Cyrillic/Latin glyphs) onto
// the Latin operator letters the grammar expects.
var lookalikeRunes = map[rune]rune{
	'Х': 'X', // Cyrillic Kha, looks like Latin X
	'О': 'O', // Cyrillic O, looks like Latin O
	' ': ' ', // non-breaking space
	' ': ' ', // figure space
	' ': ' ', // narrow no-break space
}

// Sanitize normalizes raw AHB source text before tokenizing: non-breaking
// space variants collapse to plain spaces, and Unicode look-alike letters
// for the Latin operator tokens are rewritten to their Latin form.
func Sanitize(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if repl, ok := lookalikeRunes[r]; ok {
			sb.WriteRune(repl)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
