package dto

type CreateCommentInput struct {
	Content string `form:"content" binding:"required,max=2000"`
}
