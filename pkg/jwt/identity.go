package jwt

import (
	"context"

	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Identity 从令牌中解析出的调用者
type Identity struct {
	ID    string
	Email string
	Roles []string
}

func (i *Identity) IsAdmin() bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == constants.RoleAdmin {
			return true
		}
	}
	return false
}

// GetIdentity 未登录时返回 nil
func GetIdentity(c *app.RequestContext) *Identity {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*Identity)
	if identity == nil || identity.ID == "" {
		return nil
	}
	return identity
}

// ViewerID 游客为空串
func ViewerID(c *app.RequestContext) string {
	if identity := GetIdentity(c); identity != nil {
		return identity.ID
	}
	return ""
}

// ConvertJWTPayloadToString 取出当前用户ID, 未登录时返回 NotAuthenticated
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (string, error) {
	identity := GetIdentity(c)
	if identity == nil {
		return "", errno.NotAuthenticatedErr
	}
	return identity.ID, nil
}
