package model

// All 需要迁移的全部表
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserRole{},
		&Channel{},
		&Video{},
		&Like{},
		&Comment{},
		&Subscription{},
	}
}
