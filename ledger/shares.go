package ledger

import (
	"strconv"
	"strings"
)

// ParseShareCount parses a raw form value into a share count. Both buy and
// sell go through this one parser: the input must be nothing but decimal
// digits (no sign, no fraction) and represent a count of at least 1.
func ParseShareCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidShareCount
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, ErrInvalidShareCount
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrInvalidShareCount
	}
	return n, nil
}
