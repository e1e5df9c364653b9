package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// FullPath joins a media base directory and a file name. The base may use
// either separator since it usually names a path on the server's machine.
func FullPath(base, name string) string {
	base = strings.TrimRight(strings.TrimSpace(base), `/\`)
	if base == "" {
		return name
	}
	sep := "/"
	if strings.Contains(base, `\`) && !strings.Contains(base, "/") {
		sep = `\`
	}
	return base + sep + name
}

func ValidateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server url must use http or https: %s", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("server url has no host: %s", raw)
	}
	return nil
}
