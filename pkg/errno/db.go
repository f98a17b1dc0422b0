package errno

import (
	"errors"

	"gorm.io/gorm"
)

// FromDB 把存储层错误归类 记录不存在 -> NotFound, 唯一索引冲突 -> Conflict
// 其他错误原样返回, 由 ConvertErr 归为 ServiceErr
func FromDB(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundErr.WithMessage(what + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ConflictErr.WithMessage(what + " already exists")
	default:
		return err
	}
}
