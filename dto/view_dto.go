package dto

import "github.com/meinwort/meinwort-go/models"

// PetitionView is a petition enriched with its derived signature count and
// goal progress for display.
type PetitionView struct {
	models.Petition
	SignatureCount int64   `json:"signature_count"`
	Progress       float64 `json:"progress"`
	GoalReached    bool    `json:"goal_reached"`
}

// CommentView is a comment enriched with its derived like count.
type CommentView struct {
	models.PetitionComment
	LikeCount int64 `json:"like_count"`
}

// DraftView is the wizard state sent to the client, including the computed
// step sequence so the client renders the right indicator shape.
type DraftView struct {
	models.PetitionDraft
	Steps    []string `json:"steps"`
	Restored bool     `json:"restored"`
}
