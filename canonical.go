package dataprep

import "strings"

// CanonicalName reduces a free-text station label to the key used for
// matching against the registry. Lowercases, expands "&", strips
// apostrophes, exposes parenthesized qualifiers as plain tokens, and drops
// generic and line-name tokens. Idempotent; empty input yields an empty key.
func CanonicalName(label string) string {
	text := strings.ToLower(label)
	text = strings.ReplaceAll(text, "&", " and ")
	for _, punct := range []string{"'", "’"} {
		text = strings.ReplaceAll(text, punct, "")
	}
	text = strings.ReplaceAll(text, "(", " ")
	text = strings.ReplaceAll(text, ")", " ")

	var kept []string
	for _, token := range strings.Fields(text) {
		if _, ok := tokensToRemove[token]; ok {
			continue
		}
		if _, ok := lineAbbrevs[token]; ok {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}
