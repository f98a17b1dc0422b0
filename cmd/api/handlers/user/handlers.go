package handlers

type UpdateUserParam struct {
	Name string `json:"name" form:"name"`
}

type ChangePasswordParam struct {
	OldPassword string `json:"old_password" form:"old_password"`
	NewPassword string `json:"new_password" form:"new_password"`
}
