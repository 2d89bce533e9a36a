package analysis

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Tokens splits a multi-select answer on commas. Line breaks inside a token
// become spaces, tokens are trimmed and empty tokens dropped.
func Tokens(cell string) []string {
	var tokens []string
	for _, part := range strings.Split(cell, ",") {
		t := strings.TrimSpace(lineBreaks.Replace(part))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Explode flattens every non-missing answer into its tokens, in row order.
func Explode(values []*string) []string {
	var tokens []string
	for _, v := range values {
		if v == nil {
			continue
		}
		tokens = append(tokens, Tokens(*v)...)
	}
	return tokens
}

// MultiSelect counts each selected option once per response that chose it.
// Missing responses contribute nothing.
func MultiSelect(values []*string) Counts {
	return Tally(Explode(values))
}
