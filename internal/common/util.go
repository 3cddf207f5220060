package common

import (
	"fmt"
	"strconv"
	"strings"
)

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. Nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ParseID parses a positive numeric identifier as used in REST paths.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrorIncorrectID, s)
	}
	return id, nil
}

// SplitTags turns a comma separated list into trimmed, non-empty tags.
func SplitTags(s string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
