// Package selector implements the reversible base64 encoding applied to the
// warehouse-selector query parameter in page URLs. It keeps raw ids out of
// visible links and nothing more; it is not an access control and must never
// be treated as one.
package selector

import (
	"encoding/base64"
	"strconv"
)

// Encode renders a warehouse id as the opaque `w` query parameter value.
func Encode(id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// Decode parses a `w` parameter back into a warehouse id. A missing or
// malformed value degrades to "no selection" (ok=false), never an error.
func Decode(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
