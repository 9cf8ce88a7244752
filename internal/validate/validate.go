package validate

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// emailRX checks the local-part@domain.tld shape only: at least one
// non-'@' character, an '@', a domain with a dot and a non-empty tail.
var emailRX = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

func Email(s string) bool {
	return emailRX.MatchString(s)
}

// Date parses a YYYY-MM-DD string into local midnight. Stored
// created_at instants are local too, so comparing against the midnight
// of the same day keeps articles from later that day included in any
// time zone.
func Date(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// Tags splits a comma-separated string, trims each segment and drops
// empty ones. Order and duplicates are preserved. The result is never
// nil so it serializes as [].
func Tags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}

	return tags
}
