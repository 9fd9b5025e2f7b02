package dto

type CreateGroupInput struct {
	Name        string  `form:"name" binding:"required,max=100" example:"Umweltfreunde Berlin"`
	Description *string `form:"description"`
}

type GroupMessageInput struct {
	Content string `form:"content" binding:"required,max=2000"`
}

type AttachPetitionInput struct {
	PetitionID uint `form:"petition_id" binding:"required"`
}

// GroupDTO is a group enriched with the derived counts shown on list cards.
type GroupDTO struct {
	GID           uint    `json:"g_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	LogoURL       *string `json:"logo_url"`
	CreatedBy     uint    `json:"created_by"`
	MemberCount   int64   `json:"member_count"`
	PetitionCount int64   `json:"petition_count"`
}
