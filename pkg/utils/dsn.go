package utils

import (
	"strings"

	"StikTube.com/config"
)

func GetMysqlDsn() string {
	//生成数据库的dsn
	dsn := strings.Join([]string{config.ConfigInfo.Mysql.Username, ":",
		config.ConfigInfo.Mysql.Password, "@tcp(", config.ConfigInfo.Mysql.Addr, ")/",
		config.ConfigInfo.Mysql.Database, "?charset=" + config.ConfigInfo.Mysql.Charset + "&parseTime=true&loc=Local"}, "") //nolint:lll

	return dsn
}

// GetSqliteDsn 本地开发使用的 sqlite 文件
func GetSqliteDsn() string {
	path := config.ConfigInfo.Mysql.Path
	if path == "" {
		path = "stiktube.db"
	}
	return path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
}

// GetRabbitmqURL 地址为空时返回空串, 表示不发布事件
func GetRabbitmqURL() string {
	conf := config.ConfigInfo.RabbitMq
	if conf.Addr == "" {
		return ""
	}
	return "amqp://" + conf.Username + ":" + conf.Password + "@" + conf.Addr + "/"
}
