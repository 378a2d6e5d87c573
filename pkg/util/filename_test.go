package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain filename",
			input: "photo.jpg",
			want:  "photo.jpg",
		},
		{
			name:  "Spaces become underscores",
			input: "my photo.jpg",
			want:  "my_photo.jpg",
		},
		{
			name:  "Path traversal stripped",
			input: "../../etc/passwd",
			want:  "passwd",
		},
		{
			name:  "Windows path stripped",
			input: `C:\Users\me\cat.png`,
			want:  "cat.png",
		},
		{
			name:  "Special characters dropped",
			input: "b@nner!(1).webp",
			want:  "bnner1.webp",
		},
		{
			name:  "Leading dots trimmed",
			input: "..hidden",
			want:  "hidden",
		},
		{
			name:  "Nothing usable",
			input: "???",
			want:  "upload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}
