package sqlite

import (
	"strings"
	"unicode"
)

// appendLimit appends a LIMIT clause to a query builder if limit is > 0.
func appendLimit(query *strings.Builder, args *[]any, limit int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
}

// matchExpression turns free text into an FTS5 query where every word must
// match as a prefix. Returns "" if the text has no words.
// Example: `deep merge!` → `"deep"* "merge"*`
func matchExpression(text string) string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(words))
	for _, w := range words {
		terms = append(terms, `"`+w+`"*`)
	}
	return strings.Join(terms, " ")
}

// splitIdentifier breaks a camelCase identifier into lowercase words so the
// tokenizer can match its parts.
// Example: "deepCloneJSON" → "deep clone json"
func splitIdentifier(name string) string {
	var words []string
	var current []rune

	runes := []rune(name)
	for i, r := range runes {
		boundary := unicode.IsUpper(r) && i > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1])))
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			boundary = true
		}
		if boundary && len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, unicode.ToLower(r))
		}
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	return strings.Join(words, " ")
}
