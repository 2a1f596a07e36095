// Package whatsapp builds wa.me links that open a chat pre-filled with the
// order message. This is a fire-and-forget handoff; no delivery confirmation
// is available.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// LinkBuilder produces prefilled chat URLs for a destination phone number.
type LinkBuilder struct{}

func NewLinkBuilder() *LinkBuilder {
	return &LinkBuilder{}
}

// Handoff returns a https://wa.me/<number>?text=... URL for the given body.
// The destination must be a phone number in international format, digits
// only (a leading + is tolerated and stripped).
func (b *LinkBuilder) Handoff(destination, body string) (string, error) {
	number := strings.TrimPrefix(strings.TrimSpace(destination), "+")
	if number == "" {
		return "", fmt.Errorf("destination number is empty")
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("destination number %q contains non-digits", destination)
		}
	}

	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + number,
	}
	q := url.Values{}
	q.Set("text", body)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
