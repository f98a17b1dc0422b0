package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYoutubeID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"watch url", "https://youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with www and params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/jNQXAC9IVRw", "jNQXAC9IVRw", true},
		{"embed", "https://www.youtube.com/embed/9bZkp7q19f0?autoplay=1", "9bZkp7q19f0", true},
		{"v path", "http://youtube.com/v/kJQP7kiw5Fk", "kJQP7kiw5Fk", true},
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"bare id with dash and underscore", "hT_nvWreIhg", "hT_nvWreIhg", true},
		{"not a url", "not a url", "", false},
		{"too short", "dQw4w9WgXc", "", false},
		{"too long bare", "dQw4w9WgXcQQ", "", false},
		{"unknown host", "https://vimeo.com/watch?v=dQw4w9WgXcQ", "", false},
		{"empty", "", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ExtractYoutubeID(c.input)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestYoutubeThumbnail(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", YoutubeThumbnail("dQw4w9WgXcQ", "hq"))
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/default.jpg", YoutubeThumbnail("dQw4w9WgXcQ", "default"))
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg", YoutubeThumbnail("dQw4w9WgXcQ", "mq"))
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/sddefault.jpg", YoutubeThumbnail("dQw4w9WgXcQ", "sd"))
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", YoutubeThumbnail("dQw4w9WgXcQ", "maxres"))
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", YoutubeThumbnail("dQw4w9WgXcQ", "4k"))
}

func TestYoutubeEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", YoutubeEmbedURL("dQw4w9WgXcQ"))
}
