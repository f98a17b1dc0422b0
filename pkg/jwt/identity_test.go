package jwt

import (
	"context"
	"testing"

	"StikTube.com/pkg/constants"
	"StikTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	c := app.NewContext(0)
	assert.Nil(t, GetIdentity(c))
	assert.Equal(t, "", ViewerID(c))
	_, err := ConvertJWTPayloadToString(context.Background(), c)
	assert.ErrorIs(t, err, errno.NotAuthenticatedErr)

	c.Set(constants.IdentityKey, &Identity{ID: "u1", Roles: []string{constants.RoleUser, constants.RoleAdmin}})
	assert.Equal(t, "u1", ViewerID(c))
	assert.True(t, GetIdentity(c).IsAdmin())
	id, err := ConvertJWTPayloadToString(context.Background(), c)
	assert.NoError(t, err)
	assert.Equal(t, "u1", id)

	var nobody *Identity
	assert.False(t, nobody.IsAdmin())
	assert.False(t, (&Identity{ID: "u2", Roles: []string{constants.RoleUser}}).IsAdmin())
}
