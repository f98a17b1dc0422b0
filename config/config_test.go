package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitDefaultsAndEnv(t *testing.T) {
	t.Setenv("STIKTUBE_MYSQL_PATH", "from-env.db")
	t.Setenv("STIKTUBE_ADMIN_EMAIL", "root@stiktube.test")

	Init()

	assert.Equal(t, "from-env.db", ConfigInfo.Mysql.Path)
	assert.Equal(t, "root@stiktube.test", ConfigInfo.Admin.Email)
	assert.NotEmpty(t, ConfigInfo.Server.Addr)
	assert.NotEmpty(t, ConfigInfo.Jwt.Timeout)
}
