package assetmodel

import (
	"errors"
	"log/slog"

	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository tracks media files uploaded to object storage.
type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(orgId string, name string, url string, contentType string) (*model.Asset, error) {
	asset := &model.Asset{
		ID:          uuid.New().String(),
		OrgID:       orgId,
		Name:        name,
		URL:         url,
		ContentType: contentType,
	}

	if err := r.db.Create(asset).Error; err != nil {
		slog.Error("Asset Create failed", "error", err, "org_id", orgId)
		return nil, err
	}

	return asset, nil
}

func (r *AssetRepository) GetById(assetId string) (*model.Asset, error) {
	asset := new(model.Asset)
	err := r.db.Where("id = ?", assetId).First(asset).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Asset GetById failed", "error", err, "asset_id", assetId)
		return nil, err
	}

	return asset, nil
}

func (r *AssetRepository) GetByOrg(orgId string) ([]*model.Asset, error) {
	var assets []*model.Asset
	err := r.db.Where("org_id = ?", orgId).Order("created_at desc").Find(&assets).Error

	if err != nil {
		slog.Error("Asset GetByOrg failed", "error", err, "org_id", orgId)
		return nil, err
	}

	return assets, nil
}

func (r *AssetRepository) Delete(assetId string) (*model.Asset, error) {
	asset, err := r.GetById(assetId)
	if err != nil || asset == nil {
		return nil, err
	}

	if err := r.db.Delete(asset).Error; err != nil {
		slog.Error("Asset Delete failed", "error", err, "asset_id", assetId)
		return nil, err
	}

	return asset, nil
}
