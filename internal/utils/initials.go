package utils

import (
	"strings"
)

// GenerateInitials derives a two-character display abbreviation from a name.
// "John Doe" -> "JD", "Johndoe" -> "JO", "John Frederick Doe" -> "JD",
// "J" -> "J-", "" -> "--".
func GenerateInitials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "--"
	}

	if len(tokens) == 1 {
		runes := []rune(tokens[0])
		first := strings.ToUpper(string(runes[0]))
		second := "-"
		if len(runes) > 1 {
			second = strings.ToUpper(string(runes[1]))
		}
		return first + second
	}

	first := []rune(tokens[0])
	last := []rune(tokens[len(tokens)-1])
	return strings.ToUpper(string(first[0])) + strings.ToUpper(string(last[0]))
}
