package broker

import (
	"strings"
	"unicode/utf8"
)

// ParseLocation extracts a (city, state) hint from a free-form address such as
// "123 Main St, Springfield, IL 62701" or "Springfield, IL". The state is only
// accepted when the first token of the last comma-separated part is exactly
// two characters. Addresses without a comma yield empty strings.
func ParseLocation(address string) (city, state string) {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return "", ""
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if tokens := strings.Fields(parts[len(parts)-1]); len(tokens) > 0 && utf8.RuneCountInString(tokens[0]) == 2 {
		state = strings.ToUpper(tokens[0])
	}

	return parts[len(parts)-2], state
}
