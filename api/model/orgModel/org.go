package orgmodel

import (
	"log/slog"

	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgRepository is the organization membership oracle: every template and
// entity access check goes through it.
type OrgRepository struct {
	db *gorm.DB
}

func NewOrgRepository(db *gorm.DB) *OrgRepository {
	return &OrgRepository{db: db}
}

func (r *OrgRepository) Create(name string, ownerUserId string) (*model.Organization, error) {
	org := &model.Organization{
		ID:   uuid.New().String(),
		Name: name,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		member := &model.Member{
			ID:     uuid.New().String(),
			OrgID:  org.ID,
			UserID: ownerUserId,
			Role:   "owner",
		}
		return tx.Create(member).Error
	})

	if err != nil {
		slog.Error("Org Create failed", "error", err, "name", name)
		return nil, err
	}

	return org, nil
}

// IsMember reports whether the user belongs to the organization.
func (r *OrgRepository) IsMember(userId string, orgId string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Member{}).
		Where("user_id = ? AND org_id = ?", userId, orgId).
		Count(&count).Error

	if err != nil {
		slog.Error("Org IsMember query failed", "error", err, "user_id", userId, "org_id", orgId)
		return false, err
	}

	return count > 0, nil
}

// GetOrgIdsByUser lists every organization the user belongs to.
func (r *OrgRepository) GetOrgIdsByUser(userId string) ([]string, error) {
	var orgIds []string
	err := r.db.Model(&model.Member{}).
		Where("user_id = ?", userId).
		Pluck("org_id", &orgIds).Error

	if err != nil {
		slog.Error("Org GetOrgIdsByUser query failed", "error", err, "user_id", userId)
		return nil, err
	}

	return orgIds, nil
}
