package constants

import "time"

const (
	UserTableName         = "users"
	UserRoleTableName     = "user_roles"
	ChannelTableName      = "channels"
	VideoTableName        = "videos"
	LikeTableName         = "likes"
	CommentTableName      = "comments"
	SubscriptionTableName = "subscriptions"

	DataFormate = "2006-01-02 15:04:05"

	ServiceName = "stiktube"

	// jwt
	IdentityKey  = "identity"
	JWTRealm     = "stiktube"
	TokenTimeout = 30 * 24 * time.Hour

	// 角色
	RoleAdmin = "admin"
	RoleUser  = "user"

	// 列表长度
	FeedLimit         = 50
	SearchLimit       = 50
	ShortsLimit       = 50
	RelatedLimit      = 10
	DefaultVideoLimit = 20
	MaxVideoLimit     = 100

	MaxCommentLength = 5000
	MaxTitleLength   = 200
	MaxImageSize     = 5 << 20

	// 管理员引导时创建的官方频道
	OfficialChannelName   = "StikTube Official"
	OfficialChannelHandle = "stiktube"

	// 消息队列
	EventExchange = "stiktube_events"
	EventQueue    = "stiktube_event_queue"

	// redis key
	RevokedTokenKeyTemplate = "token:revoked:%s"
	LockKeyTemplate         = "lock:%s:%s:%s"
)
