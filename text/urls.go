package text

import "regexp"

var urlPattern = regexp.MustCompile(`https?://(?:[a-zA-Z0-9$\-_@.&+!*(),]|%[0-9a-fA-F]{2})+`)

// FindURLs extracts http and https URLs from label text, typically to
// offer appending a QR code for each.
func FindURLs(s string) []string {
	return urlPattern.FindAllString(s, -1)
}
