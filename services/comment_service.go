package services

import (
	"errors"

	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("comment already liked")
)

type CommentService struct {
	Repos *repositories.Repos
}

func NewCommentService(repos *repositories.Repos) *CommentService {
	return &CommentService{Repos: repos}
}

func (s *CommentService) AddComment(uid, petitionID uint, input dto.CreateCommentInput) (models.PetitionComment, error) {
	petition, err := s.Repos.Petition.GetPetitionByID(petitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PetitionComment{}, ErrPetitionNotFound
		}
		return models.PetitionComment{}, err
	}
	if petition.Status != string(models.PetitionStatusPublished) {
		return models.PetitionComment{}, ErrPetitionNotPublished
	}

	comment := models.PetitionComment{
		PetitionID: petitionID,
		UID:        uid,
		Content:    input.Content,
	}
	if err := s.Repos.Comment.CreateComment(&comment); err != nil {
		return models.PetitionComment{}, err
	}
	return comment, nil
}

// ListComments returns a petition's comments, each with its derived like
// count. One count query per comment.
func (s *CommentService) ListComments(petitionID uint) ([]dto.CommentView, error) {
	comments, err := s.Repos.Comment.ListByPetition(petitionID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentView, 0, len(comments))
	for _, comment := range comments {
		likes, err := s.Repos.Comment.CountLikes(comment.CID)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.CommentView{PetitionComment: comment, LikeCount: likes})
	}
	return views, nil
}

// LikeComment records one like per user and comment; a second like surfaces
// ErrAlreadyLiked.
func (s *CommentService) LikeComment(uid, commentID uint) error {
	if _, err := s.Repos.Comment.GetCommentByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	err := s.Repos.Comment.CreateLike(&models.CommentLike{CID: commentID, UID: uid})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *CommentService) ReportContent(uid uint, input dto.CreateReportInput) (models.Report, error) {
	report := models.Report{
		ReporterID: uid,
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		Reason:     input.Reason,
		Details:    input.Details,
		Status:     "open",
	}
	if err := s.Repos.Report.CreateReport(&report); err != nil {
		return models.Report{}, err
	}
	return report, nil
}
