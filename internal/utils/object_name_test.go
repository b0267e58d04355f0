package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "photo.jpg", want: "photo.jpg"},
		{in: "my photo (1).JPG", want: "my_photo__1_.JPG"},
		{in: "../../etc/passwd", want: ".._.._etc_passwd"},
		{in: "été.png", want: "_t_.png"},
		{in: "", want: "file.bin"},
		{in: "   ", want: "file.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestObjectNamer_Name(t *testing.T) {
	fixed := time.UnixMilli(1700000000123)
	n := &ObjectNamer{now: func() time.Time { return fixed }, newID: timeOrderedID}

	first := n.Name("beach day.jpg")
	second := n.Name("beach day.jpg")

	assert.Regexp(t, regexp.MustCompile(`^1700000000123_[0-9a-f]{8}_beach_day\.jpg$`), first)
	assert.NotEqual(t, first, second)
}

func TestObjectNamer_NameUsesIDTail(t *testing.T) {
	n := &ObjectNamer{
		now:   func() time.Time { return time.UnixMilli(42) },
		newID: func() string { return "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b" },
	}

	assert.Equal(t, "42_2e3f4a5b_trip.png", n.Name("trip.png"))
}
