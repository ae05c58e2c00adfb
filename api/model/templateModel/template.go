package templatemodel

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/eventflow-app/eventflow-api/type/payload"
	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

const designCollection = "templates"

// TemplateRepository manages visual templates. PostgreSQL keeps the index
// row (ownership, name); the design document itself lives in MongoDB under
// the same ID.
type TemplateRepository struct {
	db    *gorm.DB
	mongo *mongo.Database
}

// TemplateWithDesign is the combined view handed to callers.
type TemplateWithDesign struct {
	model.TemplateMeta
	Design json.RawMessage `json:"design"`
}

func NewTemplateRepository(db *gorm.DB, mongoDb *mongo.Database) *TemplateRepository {
	return &TemplateRepository{db: db, mongo: mongoDb}
}

func (r *TemplateRepository) Create(body payload.CreateTemplatePayload) (*TemplateWithDesign, error) {
	meta := &model.TemplateMeta{
		ID:      uuid.New().String(),
		OrgID:   body.OrgID,
		EventID: body.EventID,
		Name:    body.Name,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var designDoc bson.M
	if err := bson.UnmarshalExtJSON(body.Design, true, &designDoc); err != nil {
		slog.Warn("Template Create design is not valid JSON", "error", err, "org_id", body.OrgID)
		return nil, err
	}
	designDoc["_id"] = meta.ID

	if _, err := r.mongo.Collection(designCollection).InsertOne(ctx, designDoc); err != nil {
		slog.Error("Template Create Mongo insert failed", "error", err, "template_id", meta.ID)
		return nil, err
	}

	if err := r.db.Create(meta).Error; err != nil {
		slog.Error("Template Create Postgres insert failed", "error", err, "template_id", meta.ID)
		// Roll back the design document so the two stores stay aligned.
		if _, delErr := r.mongo.Collection(designCollection).DeleteOne(ctx, bson.M{"_id": meta.ID}); delErr != nil {
			slog.Warn("Template Create rollback failed", "error", delErr, "template_id", meta.ID)
		}
		return nil, err
	}

	return &TemplateWithDesign{TemplateMeta: *meta, Design: body.Design}, nil
}

// GetById returns nil, nil when the template does not exist.
func (r *TemplateRepository) GetById(templateId string) (*TemplateWithDesign, error) {
	meta := new(model.TemplateMeta)
	err := r.db.Where("id = ?", templateId).First(meta).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Template GetById Postgres failed", "error", err, "template_id", templateId)
		return nil, err
	}

	design, err := r.getDesign(templateId)
	if err != nil {
		return nil, err
	}

	return &TemplateWithDesign{TemplateMeta: *meta, Design: design}, nil
}

func (r *TemplateRepository) GetByOrg(orgId string) ([]*model.TemplateMeta, error) {
	var metas []*model.TemplateMeta
	err := r.db.Where("org_id = ?", orgId).Order("updated_at desc").Find(&metas).Error

	if err != nil {
		slog.Error("Template GetByOrg failed", "error", err, "org_id", orgId)
		return nil, err
	}

	return metas, nil
}

func (r *TemplateRepository) Update(templateId string, body payload.UpdateTemplatePayload) (*TemplateWithDesign, error) {
	existing, err := r.GetById(templateId)
	if err != nil || existing == nil {
		return nil, err
	}

	if body.Name != "" {
		if err := r.db.Model(&model.TemplateMeta{}).Where("id = ?", templateId).Update("name", body.Name).Error; err != nil {
			slog.Error("Template Update name failed", "error", err, "template_id", templateId)
			return nil, err
		}
		existing.Name = body.Name
	}

	if len(body.Design) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var designDoc bson.M
		if err := bson.UnmarshalExtJSON(body.Design, true, &designDoc); err != nil {
			return nil, err
		}
		designDoc["_id"] = templateId

		opts := options.Replace().SetUpsert(true)
		if _, err := r.mongo.Collection(designCollection).ReplaceOne(ctx, bson.M{"_id": templateId}, designDoc, opts); err != nil {
			slog.Error("Template Update design failed", "error", err, "template_id", templateId)
			return nil, err
		}
		existing.Design = body.Design
	}

	return existing, nil
}

func (r *TemplateRepository) Delete(templateId string) (*model.TemplateMeta, error) {
	meta := new(model.TemplateMeta)
	err := r.db.Where("id = ?", templateId).First(meta).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.Delete(meta).Error; err != nil {
		slog.Error("Template Delete Postgres failed", "error", err, "template_id", templateId)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.mongo.Collection(designCollection).DeleteOne(ctx, bson.M{"_id": templateId}); err != nil {
		slog.Warn("Template Delete design cleanup failed", "error", err, "template_id", templateId)
	}

	return meta, nil
}

func (r *TemplateRepository) getDesign(templateId string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var designDoc bson.M
	err := r.mongo.Collection(designCollection).FindOne(ctx, bson.M{"_id": templateId}).Decode(&designDoc)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			slog.Warn("Template design document missing", "template_id", templateId)
			return nil, nil
		}
		slog.Error("Template getDesign failed", "error", err, "template_id", templateId)
		return nil, err
	}

	delete(designDoc, "_id")

	raw, err := json.Marshal(designDoc)
	if err != nil {
		return nil, err
	}

	return raw, nil
}
