package atelier

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseRecordURI splits an at:// record URI into its tag and digest.
func ParseRecordURI(escaped string) (string, string, error) {
	uriString, err := url.QueryUnescape(escaped)
	if err != nil {
		return "", "", fmt.Errorf("invalid uri encoding")
	}
	uri, err := url.Parse(uriString)
	if err != nil {
		return "", "", fmt.Errorf("invalid uri")
	}

	if uri.Scheme != "at" {
		return "", "", fmt.Errorf("unsupported uri scheme")
	}

	tag := uri.Host
	digest := strings.TrimPrefix(uri.Path, "/")

	return tag, digest, nil
}
