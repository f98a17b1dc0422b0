package db_test

import (
	"context"
	"testing"

	"StikTube.com/cmd/channel/dal/db"
	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAdjustFakeSubscribersInOneTx(t *testing.T) {
	conn := testutil.NewDB(t)
	channel := testutil.CreateChannel(t, testutil.CreateUser(t, "owner"))

	// 记录每条访问 channels 表的语句是否跑在事务连接上
	var inTx []bool
	record := func(d *gorm.DB) {
		if d.Statement.Table != constants.ChannelTableName {
			return
		}
		_, ok := d.Statement.ConnPool.(gorm.TxCommitter)
		inTx = append(inTx, ok)
	}
	require.NoError(t, conn.Callback().Update().After("gorm:update").Register("test:channel_update_tx", record))
	require.NoError(t, conn.Callback().Query().After("gorm:query").Register("test:channel_query_tx", record))

	fake, err := db.AdjustFakeSubscribers(context.Background(), channel.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, int64(250), fake)

	require.Len(t, inTx, 2)
	assert.Equal(t, []bool{true, true}, inTx)

	fake, err = db.AdjustFakeSubscribers(context.Background(), channel.ID, -1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fake)

	_, err = db.AdjustFakeSubscribers(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
