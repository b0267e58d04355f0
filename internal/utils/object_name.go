package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultObjectFileName = "file.bin"

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ObjectNamer derives storage object names from client file names.
type ObjectNamer struct {
	now   func() time.Time
	newID func() string
}

// NewObjectNamer returns a namer using the wall clock.
func NewObjectNamer() *ObjectNamer {
	return &ObjectNamer{now: time.Now, newID: timeOrderedID}
}

// timeOrderedID returns a UUIDv7, or a random v4 if the clock source fails.
func timeOrderedID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Name returns "<unix-millis>_<id prefix>_<sanitized name>". Characters
// outside [a-zA-Z0-9._-] become "_" and an empty name becomes "file.bin".
// The id prefix keeps two files with the same name uploaded in the same
// millisecond apart.
func (n *ObjectNamer) Name(original string) string {
	id := strings.ReplaceAll(n.newID(), "-", "")
	return strconv.FormatInt(n.now().UnixMilli(), 10) + "_" + id[len(id)-8:] + "_" + SanitizeFileName(original)
}

// SanitizeFileName replaces characters unsafe in object keys with "_".
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultObjectFileName
	}
	return unsafeFileNameChars.ReplaceAllString(name, "_")
}
