// Package search provides the substring matcher behind the terminal's
// product and customer search boxes.
package search

import "strings"

// Fuzzy filters items down to those where any of the strings extracted by
// fields contains term, case-insensitively. An empty term matches
// everything.
func Fuzzy[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, value := range fields(item) {
			if strings.Contains(strings.ToLower(value), term) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
