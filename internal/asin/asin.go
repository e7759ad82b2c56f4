package asin

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultTag is the placeholder associate tag used when none is configured.
const DefaultTag = "yourtrackingid"

const storefront = "https://www.amazon.com"

var (
	dpPattern      = regexp.MustCompile(`/dp/([A-Z0-9]{10})(?:/|\?|$)`)
	segmentPattern = regexp.MustCompile(`/([A-Z0-9]{10})(?:/|\?|$)`)
)

// Extract derives the 10-character product identifier from an Amazon
// product URL. It tries, in order: the canonical /dp/<asin> form, a path
// segment immediately following a "dp" segment, and finally any
// 10-character alphanumeric path segment. ok is false when none match;
// malformed URLs never produce an error.
func Extract(rawURL string) (string, bool) {
	if m := dpPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}

	if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil {
		parts := strings.Split(u.Path, "/")
		for i, part := range parts {
			if part == "dp" && i+1 < len(parts) && len(parts[i+1]) == 10 {
				return parts[i+1], true
			}
		}
	}

	if m := segmentPattern.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}

	return "", false
}

// AssociateURL builds the canonical tracking link for an identifier.
// Pure function; callers guarantee a non-empty identifier. An empty tag
// falls back to DefaultTag.
func AssociateURL(id string, tag string) string {
	if strings.TrimSpace(tag) == "" {
		tag = DefaultTag
	}
	return fmt.Sprintf("%s/dp/%s/ref=nosim?tag=%s", storefront, id, tag)
}

// ProductURL is the cleaned canonical page URL for an identifier,
// without any referral parameters.
func ProductURL(id string) string {
	return fmt.Sprintf("%s/dp/%s", storefront, id)
}
