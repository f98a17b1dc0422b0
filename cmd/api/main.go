package main

import (
	"context"
	"fmt"
	"io"

	channeldb "StikTube.com/cmd/channel/dal/db"
	interactiondb "StikTube.com/cmd/interaction/dal/db"
	relationdb "StikTube.com/cmd/relation/dal/db"
	userdb "StikTube.com/cmd/user/dal/db"
	userservice "StikTube.com/cmd/user/service"
	videodb "StikTube.com/cmd/video/dal/db"
	"StikTube.com/config"
	"StikTube.com/config/jaeger"
	"StikTube.com/config/pprof"
	"StikTube.com/pkg/cache"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/database"
	"StikTube.com/pkg/errno"
	jwt "StikTube.com/pkg/jwt"
	"StikTube.com/pkg/lock"
	"StikTube.com/pkg/mq"
	"StikTube.com/pkg/oss"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

var closers []io.Closer

func Init() {
	config.Init()
	conf := config.ConfigInfo

	tracer, err := jaeger.InitJaeger(conf.Jaeger.ServiceName, conf.Jaeger.AgentAddr)
	if err != nil {
		hlog.Warnf("jaeger disabled: %v", err)
	} else {
		closers = append(closers, tracer)
	}

	conn, err := database.Open(conf.Mysql.Driver)
	if err != nil {
		hlog.Fatalf("open database failed: %v", err)
	}
	if err = database.Migrate(conn); err != nil {
		hlog.Fatalf("migrate database failed: %v", err)
	}
	userdb.Init(conn)
	channeldb.Init(conn)
	videodb.Init(conn)
	interactiondb.Init(conn)
	relationdb.Init(conn)

	if err = cache.Init(conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB); err != nil {
		hlog.Warnf("redis unavailable, token revocation and locks disabled: %v", err)
	} else if cache.Client != nil {
		lock.SetLocker(lock.NewRedsyncLocker(cache.Client))
	}

	if url := utils.GetRabbitmqURL(); url != "" {
		producer, err := mq.NewProducer(url)
		if err != nil {
			hlog.Warnf("rabbitmq unavailable, domain events disabled: %v", err)
		} else {
			mq.SetPublisher(producer)
			closers = append(closers, producer)
		}
	}

	if err = oss.InitMinio(context.Background()); err != nil {
		hlog.Warnf("minio unavailable, image upload disabled: %v", err)
	}

	if err = jwt.Init(conf.Jwt.Secret, conf.Jwt.Timeout); err != nil {
		hlog.Fatalf("jwt init failed: %v", err)
	}

	if _, err = userservice.NewAdminBootstrapService(context.Background()).EnsureAdmin(
		conf.Admin.Email, conf.Admin.PasswordHash, conf.Admin.Name); err != nil {
		hlog.Errorf("admin bootstrap failed: %v", err)
	}

	if conf.Server.Pprof {
		pprof.Load()
	}
}

func newServer() *server.Hertz {
	conf := config.ConfigInfo
	r := server.New(
		server.WithHostPorts(conf.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(2*constants.MaxImageSize),
	)

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     conf.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	register(r)
	return r
}

func main() {
	Init()
	defer func() {
		for _, c := range closers {
			c.Close()
		}
		cache.Close()
	}()

	r := newServer()
	r.Spin()
}
