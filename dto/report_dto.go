package dto

type CreateReportInput struct {
	TargetType string  `form:"target_type" binding:"required,oneof=petition comment" example:"petition"`
	TargetID   uint    `form:"target_id" binding:"required" example:"42"`
	Reason     string  `form:"reason" binding:"required,max=100" example:"Spam"`
	Details    *string `form:"details"`
}
