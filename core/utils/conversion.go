package utils

import (
	"encoding/json"
	"fmt"
)

// ToString converts various types to string.
// JSON numbers keep their source text, and nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
