// Package objectid computes git-style SHA-1 object identifiers on top of
// the in-repo digest engine.
package objectid

import (
	"fmt"

	"github.com/unkn0wn-root/sha1-go/sha1"
)

// Compute returns the hex SHA-1 digest of raw bytes.
func Compute(data []byte) string {
	d := sha1.New()
	d.Write(data)
	return d.Hexdigest()
}

// ComputeObject returns the identifier of a git object.
func ComputeObject(objType string, data []byte) string {
	// Git object format: "type size\0content"
	d := sha1.New()
	fmt.Fprintf(d, "%s %d\x00", objType, len(data))
	d.Write(data)
	return d.Hexdigest()
}

// Validate reports whether id is a full 40-character lowercase hex
// identifier.
func Validate(id string) bool {
	n := len(id)
	if n != 40 {
		return false
	}
	for i := 0; i < n; i++ {
		char := id[i]
		if !((char >= '0' && char <= '9') || (char >= 'a' && char <= 'f')) {
			return false
		}
	}
	return true
}

// Short truncates id to length characters for display.
func Short(id string, length int) string {
	if length <= 0 || length > len(id) {
		return id
	}
	return id[:length]
}
