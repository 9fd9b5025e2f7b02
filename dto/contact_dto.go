package dto

type ContactInput struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email"`
	Subject string `form:"subject" binding:"required,max=200"`
	Message string `form:"message" binding:"required,max=5000"`
}
