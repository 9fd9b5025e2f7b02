package dto

type SignInput struct {
	FirstName     string  `form:"first_name" binding:"required" example:"Anna"`
	LastName      string  `form:"last_name" binding:"required" example:"Schmidt"`
	Email         string  `form:"email" binding:"required,email" example:"anna@example.com"`
	Comment       *string `form:"comment"`
	AgreedToTerms bool    `form:"agreed_to_terms" binding:"required" example:"true"`
}
