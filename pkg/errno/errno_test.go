package errno

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConvertErr(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		assert.Equal(t, Success, ConvertErr(nil))
	})

	t.Run("wrapped errno keeps its kind", func(t *testing.T) {
		err := pkgerrors.Wrap(NotFoundErr.WithMessage("video not found"), "GetVideo failed")
		got := ConvertErr(err)
		assert.Equal(t, int64(NotFoundCode), got.ErrCode)
		assert.Equal(t, "video not found", got.ErrMsg)
	})

	t.Run("unknown error becomes service error", func(t *testing.T) {
		got := ConvertErr(pkgerrors.Wrapf(errors.New("UNIQUE constraint failed: likes.id"), "CreateLike failed"))
		assert.Equal(t, int64(ServiceErrCode), got.ErrCode)
		assert.Equal(t, ServiceErr.ErrMsg, got.ErrMsg)
		assert.NotContains(t, got.ErrMsg, "CreateLike")
		assert.NotContains(t, got.ErrMsg, "UNIQUE")
	})
}

func TestErrNoIs(t *testing.T) {
	err := pkgerrors.WithMessage(ConflictErr.WithMessage("handle taken"), "CreateChannel")
	assert.True(t, errors.Is(err, ConflictErr))
	assert.False(t, errors.Is(err, NotFoundErr))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[int64]int{
		SuccessCode:          200,
		ParamErrCode:         400,
		NotAuthenticatedCode: 401,
		NotAuthorizedCode:    403,
		NotFoundCode:         404,
		ConflictCode:         409,
		ServiceErrCode:       500,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %d", code)
	}
}

func TestFromDB(t *testing.T) {
	assert.NoError(t, FromDB(nil, "video"))

	err := FromDB(pkgerrors.Wrap(gorm.ErrRecordNotFound, "GetVideo"), "video")
	assert.ErrorIs(t, err, NotFoundErr)
	assert.Equal(t, "video not found", ConvertErr(err).ErrMsg)

	assert.ErrorIs(t, FromDB(gorm.ErrDuplicatedKey, "channel handle"), ConflictErr)

	other := errors.New("connection reset")
	assert.Equal(t, other, FromDB(other, "video"))
}
