package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	SuccessCode          = 0
	ServiceErrCode       = 10001
	ParamErrCode         = 10002
	NotAuthenticatedCode = 10003
	NotAuthorizedCode    = 10004
	NotFoundCode         = 10005
	ConflictCode         = 10006
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{code, msg}
}

// WithMessage 在保留错误类别的同时替换可读信息
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// Is 只比较错误码 便于 errors.Is(err, errno.NotFoundErr)
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	return ok && t.ErrCode == e.ErrCode
}

var (
	Success             = NewErrNo(SuccessCode, "Success")
	ServiceErr          = NewErrNo(ServiceErrCode, "Internal service error")
	ParamErr            = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	InvalidInputErr     = ParamErr
	NotAuthenticatedErr = NewErrNo(NotAuthenticatedCode, "Sign in required")
	NotAuthorizedErr    = NewErrNo(NotAuthorizedCode, "Permission denied")
	NotFoundErr         = NewErrNo(NotFoundCode, "Resource not found")
	ConflictErr         = NewErrNo(ConflictCode, "Resource already exists")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	// 未分类的错误只记日志, 不把驱动和 SQL 细节返回给客户端
	hlog.Errorf("unclassified error: %v", err)
	return ServiceErr
}

// HTTPStatus 将错误码映射为 HTTP 状态码
func HTTPStatus(code int64) int {
	switch code {
	case SuccessCode:
		return consts.StatusOK
	case ParamErrCode:
		return consts.StatusBadRequest
	case NotAuthenticatedCode:
		return consts.StatusUnauthorized
	case NotAuthorizedCode:
		return consts.StatusForbidden
	case NotFoundCode:
		return consts.StatusNotFound
	case ConflictCode:
		return consts.StatusConflict
	default:
		return consts.StatusInternalServerError
	}
}
