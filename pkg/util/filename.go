package util

import "strings"

// SanitizeFilename strips path components and reduces a user-supplied
// filename to ASCII letters, digits, dot, dash and underscore. Spaces map
// to underscores, anything else is dropped. Returns "upload" when nothing
// survives, so callers always get a usable object key component.
func SanitizeFilename(name string) string {
	// Drop any directory part, whichever separator the client used.
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._-")
	if cleaned == "" {
		return "upload"
	}
	return cleaned
}
