package jwt

import (
	"context"
	"errors"
	"time"

	"StikTube.com/cmd/user/infras/redis"
	"StikTube.com/cmd/user/service"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	hertzjwt "github.com/hertz-contrib/jwt"
)

const (
	payloadKey = "JWT_PAYLOAD"
	signInKey  = "sign_in_result"
	authErrKey = "sign_in_error"
	devSecret  = "stiktube-dev-secret"
)

var JwtMiddleware *hertzjwt.HertzJWTMiddleware

type response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type LoginParam struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

// TokenData 登录和刷新的返回
type TokenData struct {
	Token   string      `json:"token"`
	Expire  time.Time   `json:"expire"`
	User    interface{} `json:"user,omitempty"`
	Roles   []string    `json:"roles,omitempty"`
	Created bool        `json:"created,omitempty"`
}

// Init secret 为空时使用开发密钥 timeout 无法解析时使用默认值
func Init(secret, timeout string) (err error) {
	if secret == "" {
		hlog.Warn("jwt.secret is empty, using the development secret")
		secret = devSecret
	}
	expire, perr := time.ParseDuration(timeout)
	if perr != nil || expire <= 0 {
		expire = constants.TokenTimeout
	}

	JwtMiddleware, err = hertzjwt.New(&hertzjwt.HertzJWTMiddleware{
		Realm:         constants.JWTRealm,
		Key:           []byte(secret),
		Timeout:       expire,
		MaxRefresh:    expire,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var param LoginParam
			if err := c.Bind(&param); err != nil {
				c.Set(authErrKey, errno.InvalidInputErr.WithMessage(err.Error()))
				return nil, err
			}
			res, err := service.NewSignInService(ctx).SignIn(param.Email, param.Password, param.Name)
			if err != nil {
				c.Set(authErrKey, err)
				return nil, err
			}
			c.Set(signInKey, res)
			return res, nil
		},
		PayloadFunc: func(data interface{}) hertzjwt.MapClaims {
			if v, ok := data.(*service.SignInResult); ok {
				return hertzjwt.MapClaims{
					constants.IdentityKey: v.User.ID,
					"email":               v.User.Email,
					"roles":               v.Roles,
				}
			}
			return hertzjwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hertzjwt.ExtractClaims(ctx, c)
			return &Identity{
				ID:    utils.Transfer(claims[constants.IdentityKey]),
				Email: utils.Transfer(claims["email"]),
				Roles: utils.TransferStrings(claims["roles"]),
			}
		},
		// 已注销的令牌不能再使用
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			return !redis.IsTokenRevoked(ctx, hertzjwt.GetToken(ctx, c))
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			data := &TokenData{Token: token, Expire: expire}
			if v, ok := c.Get(signInKey); ok {
				res := v.(*service.SignInResult)
				data.User, data.Roles, data.Created = res.User, res.Roles, res.Created
				hlog.CtxInfof(ctx, "user %s signed in", res.User.ID)
			}
			c.JSON(consts.StatusOK, response{Code: errno.SuccessCode, Message: errno.Success.ErrMsg, Data: data})
		},
		RefreshResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.JSON(consts.StatusOK, response{Code: errno.SuccessCode, Message: errno.Success.ErrMsg, Data: &TokenData{Token: token, Expire: expire}})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			var e errno.ErrNo
			if v, ok := c.Get(authErrKey); ok {
				e = errno.ConvertErr(v.(error))
			} else if code == consts.StatusForbidden {
				e = errno.NotAuthenticatedErr.WithMessage("token has been revoked")
			} else {
				e = errno.NotAuthenticatedErr.WithMessage(message)
			}
			c.JSON(errno.HTTPStatus(e.ErrCode), response{Code: e.ErrCode, Message: e.ErrMsg})
		},
		// 令牌解析错误本身可以直接展示给客户端
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			var en errno.ErrNo
			if errors.As(e, &en) {
				return en.ErrMsg
			}
			return e.Error()
		},
	})
	return err
}

// OptionalIdentity 带了有效令牌就解析身份, 否则按游客继续
func OptionalIdentity() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if claims, err := JwtMiddleware.GetClaimsFromJWT(ctx, c); err == nil &&
			!redis.IsTokenRevoked(ctx, hertzjwt.GetToken(ctx, c)) {
			c.Set(payloadKey, claims)
			c.Set(constants.IdentityKey, JwtMiddleware.IdentityHandler(ctx, c))
		}
		c.Next(ctx)
	}
}

// Logout 令牌在过期之前一直留在黑名单里
func Logout(ctx context.Context, c *app.RequestContext) (bool, error) {
	token := hertzjwt.GetToken(ctx, c)
	claims := hertzjwt.ExtractClaims(ctx, c)
	expireAt := time.Now().Add(JwtMiddleware.Timeout)
	if exp, ok := claims["exp"].(float64); ok {
		expireAt = time.Unix(int64(exp), 0)
	}
	return redis.RevokeToken(ctx, token, expireAt)
}
