package dto

// DraftInput carries the wizard form state. Every field is optional so the
// draft can be saved after any mutation, however incomplete.
type DraftInput struct {
	PetitionType      string `form:"petition_type" binding:"omitempty,oneof=lokal national weltweit" example:"lokal"`
	Location          string `form:"location" example:"Berlin"`
	Title             string `form:"title" example:"Mehr Parks"`
	Description       string `form:"description"`
	Goal              int    `form:"goal" binding:"omitempty,min=100,max=1000000" example:"5000"`
	Category          string `form:"category" example:"Umwelt"`
	TargetInstitution string `form:"target_institution" example:"Stadtrat"`
	PhoneNumber       string `form:"phone_number" example:"+49 123 456789"`
	CurrentStep       int    `form:"current_step" binding:"omitempty,min=1,max=6" example:"1"`
}

type PetitionFilter struct {
	Category     string `form:"category"`
	PetitionType string `form:"type"`
	Location     string `form:"location"`
	Search       string `form:"q"`
	Limit        int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset       int    `form:"offset" binding:"omitempty,min=0"`
}

type ModerationInput struct {
	Reason *string `form:"reason" example:"Verstoß gegen die Richtlinien"`
}
