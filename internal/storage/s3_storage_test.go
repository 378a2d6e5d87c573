package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Storage_ObjectURL(t *testing.T) {
	withBase := NewS3Storage("ap-northeast-2", "peacepet-uploads", "key", "secret", "https://cdn.example.com/")
	assert.Equal(t, "https://cdn.example.com/uploads/cat_dog.jpg", withBase.objectURL("uploads/cat_dog.jpg"))

	direct := NewS3Storage("ap-northeast-2", "peacepet-uploads", "key", "secret", "")
	assert.Equal(t,
		"https://peacepet-uploads.s3.ap-northeast-2.amazonaws.com/uploads/cat_dog.jpg",
		direct.objectURL("uploads/cat_dog.jpg"))
}

func TestS3Storage_KeyFromURL(t *testing.T) {
	s := NewS3Storage("ap-northeast-2", "peacepet-uploads", "key", "secret", "https://cdn.example.com")

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "Base URL prefix",
			url:  "https://cdn.example.com/uploads/main_toy.png",
			want: "uploads/main_toy.png",
		},
		{
			name: "Direct S3 URL",
			url:  "https://peacepet-uploads.s3.ap-northeast-2.amazonaws.com/uploads/fb_photo.jpg",
			want: "uploads/fb_photo.jpg",
		},
		{
			name:    "No key",
			url:     "https://cdn.example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := s.keyFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}
