package services

import (
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
)

type PlatformStats struct {
	TotalUsers        int64            `json:"total_users"`
	TotalSignatures   int64            `json:"total_signatures"`
	PetitionsByStatus map[string]int64 `json:"petitions_by_status"`
}

type AdminService struct {
	Repos *repositories.Repos
}

func NewAdminService(repos *repositories.Repos) *AdminService {
	return &AdminService{Repos: repos}
}

func (s *AdminService) Stats() (PlatformStats, error) {
	stats := PlatformStats{PetitionsByStatus: make(map[string]int64)}

	users, err := s.Repos.User.CountUsers()
	if err != nil {
		return PlatformStats{}, err
	}
	stats.TotalUsers = users

	signatures, err := s.Repos.Signature.CountAllVerified()
	if err != nil {
		return PlatformStats{}, err
	}
	stats.TotalSignatures = signatures

	statuses := []models.PetitionStatus{
		models.PetitionStatusPending,
		models.PetitionStatusPublished,
		models.PetitionStatusClosed,
		models.PetitionStatusRejected,
	}
	for _, status := range statuses {
		count, err := s.Repos.Petition.CountPetitionsByStatus(string(status))
		if err != nil {
			return PlatformStats{}, err
		}
		stats.PetitionsByStatus[string(status)] = count
	}

	return stats, nil
}

func (s *AdminService) ListOpenReports() ([]models.Report, error) {
	return s.Repos.Report.ListOpenReports()
}

func (s *AdminService) QueryAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}
