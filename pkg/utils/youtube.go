package utils

import (
	"fmt"
	"regexp"
)

// 按顺序匹配 先匹配URL形式 再匹配裸ID
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

var thumbnailQuality = map[string]string{
	"default": "default",
	"hq":      "hqdefault",
	"mq":      "mqdefault",
	"sd":      "sddefault",
	"maxres":  "maxresdefault",
}

// ExtractYoutubeID 从URL或裸ID中提取11位的视频ID
// 只做语法层面的提取 不校验视频是否真实存在
func ExtractYoutubeID(input string) (string, bool) {
	for _, pattern := range youtubeIDPatterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// YoutubeThumbnail 根据清晰度生成缩略图地址 未知清晰度按 hq 处理
func YoutubeThumbnail(youtubeID, quality string) string {
	name, ok := thumbnailQuality[quality]
	if !ok {
		name = thumbnailQuality["hq"]
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", youtubeID, name)
}

func YoutubeEmbedURL(youtubeID string) string {
	return "https://www.youtube-nocookie.com/embed/" + youtubeID
}
