// Package strings holds small string helpers shared by modules and core types
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path to a single leading slash and no trailing slash
// the bare root is rejected since modules always own a sub path
func MustPrefix(s string) string {
	p := "/" + std.Trim(std.TrimSpace(s), "/ ")
	if p == "/" {
		panic("root path is required")
	}
	return p
}

// Ptr maps "" to nil so optional profile fields serialize as null
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref is the inverse of Ptr
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
