package repositories

import (
	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/models"
)

type GroupRepo interface {
	CreateGroup(group *models.Group) error
	GetGroupByID(id uint) (models.Group, error)
	ListGroups() ([]models.Group, error)
	UpdateGroup(group *models.Group) error
	DeleteGroup(id uint) error

	AddMember(member *models.GroupMember) error
	RemoveMember(gid, uid uint) error
	GetMember(gid, uid uint) (models.GroupMember, error)
	ListMembers(gid uint) ([]models.GroupMember, error)
	CountMembers(gid uint) (int64, error)

	AttachPetition(gp *models.GroupPetition) error
	ListGroupPetitionIDs(gid uint) ([]uint, error)
	CountGroupPetitions(gid uint) (int64, error)

	CreateMessage(message *models.GroupMessage) error
	ListMessages(gid uint, limit int) ([]models.GroupMessage, error)
}

type DBGroupRepo struct{}

func (r *DBGroupRepo) CreateGroup(group *models.Group) error {
	return db.DB.Create(group).Error
}

func (r *DBGroupRepo) GetGroupByID(id uint) (models.Group, error) {
	var group models.Group
	err := db.DB.First(&group, id).Error
	return group, err
}

func (r *DBGroupRepo) ListGroups() ([]models.Group, error) {
	var groups []models.Group
	err := db.DB.Order("create_at DESC").Find(&groups).Error
	return groups, err
}

func (r *DBGroupRepo) UpdateGroup(group *models.Group) error {
	return db.DB.Save(group).Error
}

func (r *DBGroupRepo) DeleteGroup(id uint) error {
	return db.DB.Delete(&models.Group{}, id).Error
}

func (r *DBGroupRepo) AddMember(member *models.GroupMember) error {
	return db.DB.Create(member).Error
}

func (r *DBGroupRepo) RemoveMember(gid, uid uint) error {
	return db.DB.Where("g_id = ? AND u_id = ?", gid, uid).Delete(&models.GroupMember{}).Error
}

func (r *DBGroupRepo) GetMember(gid, uid uint) (models.GroupMember, error) {
	var member models.GroupMember
	err := db.DB.First(&member, "g_id = ? AND u_id = ?", gid, uid).Error
	return member, err
}

func (r *DBGroupRepo) ListMembers(gid uint) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := db.DB.Where("g_id = ?", gid).Find(&members).Error
	return members, err
}

func (r *DBGroupRepo) CountMembers(gid uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.GroupMember{}).Where("g_id = ?", gid).Count(&count).Error
	return count, err
}

func (r *DBGroupRepo) AttachPetition(gp *models.GroupPetition) error {
	return db.DB.Create(gp).Error
}

func (r *DBGroupRepo) ListGroupPetitionIDs(gid uint) ([]uint, error) {
	var ids []uint
	err := db.DB.Model(&models.GroupPetition{}).Where("g_id = ?", gid).Pluck("p_id", &ids).Error
	return ids, err
}

func (r *DBGroupRepo) CountGroupPetitions(gid uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.GroupPetition{}).Where("g_id = ?", gid).Count(&count).Error
	return count, err
}

func (r *DBGroupRepo) CreateMessage(message *models.GroupMessage) error {
	return db.DB.Create(message).Error
}

func (r *DBGroupRepo) ListMessages(gid uint, limit int) ([]models.GroupMessage, error) {
	var messages []models.GroupMessage
	q := db.DB.Where("g_id = ?", gid).Order("create_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&messages).Error
	return messages, err
}
