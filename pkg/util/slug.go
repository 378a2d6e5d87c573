package util

import "strings"

// Slugify normalizes a category slug: lowercased with every space turned
// into a hyphen. Runs of spaces are not collapsed, so "Dog  Leashes"
// becomes "dog--leashes".
func Slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
