package handlers

type CreateChannelParam struct {
	Name        string `json:"name"`
	Handle      string `json:"handle"`
	Description string `json:"description"`
}

type ChannelIdParam struct {
	ChannelId string `path:"channelId"`
}

type ChannelImageParam struct {
	ChannelId string `path:"channelId"`
	Kind      string `query:"kind"`
}
