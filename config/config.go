package config

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init 读取 config.yml, 环境变量 STIKTUBE_MYSQL_ADDR 这样的写法可以覆盖文件中的值
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetEnvPrefix("STIKTUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		abs, _ := filepath.Abs(viper.ConfigFileUsed())
		logrus.Infof("Successfully read config file: %s", abs)
	}

	load()

	logrus.Infof("Config loaded - driver: %s, MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Driver, ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Admin.Email == "" {
		logrus.Warn("No admin account configured!")
	}
}

func setDefaults() {
	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("server.allow_origins", []string{"http://localhost:3000"})
	viper.SetDefault("mysql.driver", "sqlite")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("mysql.path", "stiktube.db")
	viper.SetDefault("minio.bucket", "stiktube")
	viper.SetDefault("jwt.timeout", "720h")
	viper.SetDefault("admin.name", "StikTube Admin")
	viper.SetDefault("jaeger.service_name", "stiktube")
}

// 手动从viper获取配置值，避免Unmarshal问题
func load() {
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.AllowOrigins = viper.GetStringSlice("server.allow_origins")
	ConfigInfo.Server.Pprof = viper.GetBool("server.pprof")

	ConfigInfo.Mysql.Driver = viper.GetString("mysql.driver")
	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")
	ConfigInfo.Mysql.Path = viper.GetString("mysql.path")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.Bucket = viper.GetString("minio.bucket")
	ConfigInfo.Minio.PublicURL = viper.GetString("minio.public_url")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = viper.GetString("jwt.timeout")

	ConfigInfo.Admin.Email = viper.GetString("admin.email")
	ConfigInfo.Admin.PasswordHash = viper.GetString("admin.password_hash")
	ConfigInfo.Admin.Name = viper.GetString("admin.name")

	ConfigInfo.Jaeger.AgentAddr = viper.GetString("jaeger.agent_addr")
	ConfigInfo.Jaeger.ServiceName = viper.GetString("jaeger.service_name")
}
