// Package env holds the one environment lookup that has to happen before
// config parsing (the logger bootstraps first).
package env

import "os"

// Get returns the variable's value, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
