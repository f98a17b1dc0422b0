package convert

import (
	"testing"
	"time"

	"StikTube.com/cmd/model"
	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	v := &model.Video{
		ID:        "v1",
		YoutubeID: "dQw4w9WgXcQ",
		Title:     "Never Gonna Give You Up",
		Duration:  213,
		Views:     1500,
		IsPublic:  true,
		Tags:      " music, 80s ,,pop",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	ch := &model.Channel{ID: "c1", Name: "Rick", Handle: "rick"}

	card := Card(v, ch)
	assert.Equal(t, "3:33", card.DurationText)
	assert.Equal(t, "1.5K", card.ViewsText)
	assert.Equal(t, "2 hours ago", card.PublishedText)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", card.Thumbnail)
	assert.Equal(t, "rick", card.Channel.Handle)

	detail := Detail(v, nil)
	assert.Nil(t, detail.Channel)
	assert.Equal(t, []string{"music", "80s", "pop"}, detail.Tags)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", detail.EmbedURL)

	v.Thumbnail = "https://cdn.example.com/cover.jpg"
	assert.Equal(t, "https://cdn.example.com/cover.jpg", Card(v, nil).Thumbnail)
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "go,hertz", JoinTags([]string{" go ", "", "hertz"}))
	assert.Equal(t, "", JoinTags(nil))
	assert.Equal(t, []string{}, SplitTags(""))
}
