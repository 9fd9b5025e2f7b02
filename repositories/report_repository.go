package repositories

import (
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
)

type ReportRepo interface {
	CreateReport(report *models.Report) error
	GetReportByID(id uint) (models.Report, error)
	ListOpenReports() ([]models.Report, error)
	UpdateReport(report *models.Report) error
}

type DBReportRepo struct{}

func (r *DBReportRepo) CreateReport(report *models.Report) error {
	return db.DB.Create(report).Error
}

func (r *DBReportRepo) GetReportByID(id uint) (models.Report, error) {
	var report models.Report
	err := db.DB.First(&report, id).Error
	return report, err
}

func (r *DBReportRepo) ListOpenReports() ([]models.Report, error) {
	var reports []models.Report
	err := db.DB.Where("status = ?", "open").Order("create_at DESC").Find(&reports).Error
	return reports, err
}

func (r *DBReportRepo) UpdateReport(report *models.Report) error {
	return db.DB.Save(report).Error
}
