package handlers

type LikeParam struct {
	VideoId string `path:"videoId"`
	IsLike  *bool  `json:"isLike"`
}

type CommentListParam struct {
	VideoId string `path:"videoId"`
}

type CommentCreateParam struct {
	VideoId  string `path:"videoId"`
	Text     string `json:"text"`
	ParentId string `json:"parentId"`
}

type CommentDeleteParam struct {
	CommentId string `path:"commentId"`
}
