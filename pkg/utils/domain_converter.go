package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// Matches absolute links to a tweet on the web or mobile site. Path segments
// can't contain whitespace, so two links on the same line never merge.
var statusURLRegex = regexp.MustCompile(`https?://(?:mobile\.)?twitter\.com(?:/[^\s/?#]+)+?/status/[0-9]+`)

// FindStatusURLs returns every tweet link in text, in order of appearance.
func FindStatusURLs(text string) []string {
	return statusURLRegex.FindAllString(strings.TrimSpace(text), -1)
}

// RewriteStatusURL points a link returned by FindStatusURLs at newHost,
// dropping its query string and fragment.
func RewriteStatusURL(match, newHost string) string {
	u, err := url.Parse(match)
	if err != nil {
		// Paths with malformed escapes like "100%real" don't parse. The match
		// never holds a query or fragment, so swapping the host in place is enough.
		scheme, rest, _ := strings.Cut(match, "://")
		_, path, _ := strings.Cut(rest, "/")
		return scheme + "://" + newHost + "/" + path
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	u.Host = newHost
	return u.String()
}

// RewriteStatusURLs finds every tweet link in text and points it at newHost.
// Each match yields exactly one link. Returns nil when nothing matched.
func RewriteStatusURLs(text, newHost string) []string {
	matches := FindStatusURLs(text)
	if len(matches) == 0 {
		return nil
	}

	rewritten := make([]string, 0, len(matches))
	for _, match := range matches {
		rewritten = append(rewritten, RewriteStatusURL(match, newHost))
	}
	return rewritten
}

// JoinURLs renders links one per line, each followed by a newline.
func JoinURLs(urls []string) string {
	var sb strings.Builder
	for _, u := range urls {
		sb.WriteString(u)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ConvertDomains rewrites the tweet links of text to newHost and returns them
// newline-joined. ok is false when the text has no tweet links.
func ConvertDomains(text, newHost string) (converted string, ok bool) {
	urls := RewriteStatusURLs(text, newHost)
	if urls == nil {
		return "", false
	}
	return JoinURLs(urls), true
}
