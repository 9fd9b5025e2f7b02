package dto

type CreateUserInput struct {
	Email    string  `form:"email" binding:"required,email" example:"anna@example.com"`
	Password string  `form:"password" binding:"required,min=8" example:"password123"`
	FullName *string `form:"full_name" example:"Anna Schmidt"`
	City     *string `form:"city" example:"Berlin"`
}

type UpdateUserInput struct {
	OldPassword *string `form:"old_password" example:"oldPass123"`
	Password    *string `form:"password" binding:"omitempty,min=8" example:"newPass123"`
	FullName    *string `form:"full_name" example:"Anna Schmidt"`
	City        *string `form:"city" example:"Hamburg"`
}

type UserDTO struct {
	UID      uint    `json:"u_id" example:"123"`
	Email    string  `json:"email" example:"anna@example.com"`
	FullName *string `json:"full_name" example:"Anna Schmidt"`
	City     *string `json:"city" example:"Berlin"`
	IsAdmin  bool    `json:"is_admin" example:"false"`
}
