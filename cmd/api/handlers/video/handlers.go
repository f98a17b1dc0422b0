package handlers

type VideoListParam struct {
	ChannelId string `query:"channelId"`
	Limit     int    `query:"limit"`
}

type SearchParam struct {
	Q string `query:"q"`
}

type VideoIdParam struct {
	VideoId string `path:"videoId"`
}

type PublishParam struct {
	Input       string   `json:"input"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	IsShort     bool     `json:"isShort"`
	Duration    int64    `json:"duration"`
	Thumbnail   string   `json:"thumbnail"`
	IsPublic    *bool    `json:"isPublic"`
}

// UpdateVideoParam 未出现的字段保持不变
type UpdateVideoParam struct {
	VideoId     string    `path:"videoId"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Thumbnail   *string   `json:"thumbnail"`
	IsPublic    *bool     `json:"isPublic"`
	IsShort     *bool     `json:"isShort"`
}

type YoutubeIdParam struct {
	Input string `query:"input"`
}
