package database

import (
	"time"

	"StikTube.com/cmd/model"
	"StikTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"
)

const (
	DriverMysql  = "mysql"
	DriverSqlite = "sqlite"
)

// Open 按驱动打开数据库 mysql 用于线上, sqlite 用于本地和测试
func Open(driver string) (*gorm.DB, error) {
	switch driver {
	case DriverMysql:
		return open(mysql.Open(utils.GetMysqlDsn()), false)
	case DriverSqlite, "":
		return open(sqlite.Open(utils.GetSqliteDsn()), true)
	default:
		return nil, errors.Errorf("unknown database driver %q", driver)
	}
}

// OpenSqlite 直接指定 dsn, 测试用
func OpenSqlite(dsn string) (*gorm.DB, error) {
	return open(sqlite.Open(dsn), true)
}

func open(dialector gorm.Dialector, single bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database failed")
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrap(err, "use opentracing plugin failed")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// 设置连接池参数 sqlite 只有一个写者, 单连接让事务排队
	if single {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}

// Migrate 自动建表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}
	hlog.Info("database migrated")
	return nil
}
