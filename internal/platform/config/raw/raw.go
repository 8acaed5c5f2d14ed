// Package raw reads environment variables without logging
// the logger bootstraps from it, so it must not import the logger
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads variables under a prefix
type Conf struct{ prefix string }

// New returns an unprefixed Conf
func New() Conf { return Conf{} }

// Prefix returns a Conf scoped under c's prefix plus p
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.prefix + k))
	return v, v != ""
}

// Get returns the trimmed value or def
func (c Conf) Get(k, def string) string {
	if v, ok := c.lookup(k); ok {
		return v
	}
	return def
}

// GetBool treats 1, true, yes and on as true; any other set value is false
func (c Conf) GetBool(k string, def bool) bool {
	v, ok := c.lookup(k)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetInt returns def for unset, malformed or negative values
func (c Conf) GetInt(k string, def int) int {
	v, ok := c.lookup(k)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
