package partnermodel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

const dataCollection = "partners"

// PartnerRepository mirrors the participant hybrid: Postgres index row,
// Mongo field map under the same ID.
type PartnerRepository struct {
	db    *gorm.DB
	mongo *mongo.Database
}

// CombinedPartner merges the relational row with the dynamic data.
type CombinedPartner struct {
	ID          string         `json:"id"`
	EventID     string         `json:"event_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DynamicData map[string]any `json:"data"`
}

func (p *CombinedPartner) DisplayName() string {
	if name, ok := p.DynamicData["name"].(string); ok && name != "" {
		return name
	}
	if company, ok := p.DynamicData["companyName"].(string); ok && company != "" {
		return company
	}
	return p.ID
}

func NewPartnerRepository(db *gorm.DB, mongoDb *mongo.Database) *PartnerRepository {
	return &PartnerRepository{db: db, mongo: mongoDb}
}

func (r *PartnerRepository) Add(eventId string, partners []map[string]any) ([]*CombinedPartner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ids := make([]string, len(partners))
	docs := make([]any, len(partners))
	rows := make([]*model.Partner, len(partners))
	for i, data := range partners {
		ids[i] = uuid.New().String()
		doc := bson.M{"_id": ids[i], "event_id": eventId}
		for key, value := range data {
			if key != "_id" && key != "event_id" {
				doc[key] = value
			}
		}
		docs[i] = doc
		rows[i] = &model.Partner{ID: ids[i], EventID: eventId}
	}

	if _, err := r.mongo.Collection(dataCollection).InsertMany(ctx, docs); err != nil {
		slog.Error("Partner Add Mongo failed", "error", err, "event_id", eventId)
		return nil, fmt.Errorf("mongo insertion failed: %w", err)
	}

	if err := r.db.Create(rows).Error; err != nil {
		slog.Error("Partner Add Postgres failed", "error", err, "event_id", eventId)
		if _, delErr := r.mongo.Collection(dataCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); delErr != nil {
			slog.Warn("Partner Add rollback failed", "error", delErr)
		}
		return nil, fmt.Errorf("postgres insertion failed: %w", err)
	}

	return r.GetByEvent(eventId)
}

func (r *PartnerRepository) GetByEvent(eventId string) ([]*CombinedPartner, error) {
	var rows []*model.Partner
	if err := r.db.Where("event_id = ?", eventId).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get postgres partners: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	dataById, err := r.getDataByIds(ids)
	if err != nil {
		return nil, err
	}

	combined := make([]*CombinedPartner, 0, len(rows))
	for _, row := range rows {
		combined = append(combined, combine(row, dataById[row.ID]))
	}
	return combined, nil
}

// GetByIds resolves a batch of partner IDs, reporting the missing ones.
func (r *PartnerRepository) GetByIds(ids []string) ([]*CombinedPartner, []string, error) {
	var rows []*model.Partner
	if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to get postgres partners: %w", err)
	}

	found := map[string]bool{}
	for _, row := range rows {
		found[row.ID] = true
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}

	dataById, err := r.getDataByIds(ids)
	if err != nil {
		return nil, nil, err
	}

	combined := make([]*CombinedPartner, 0, len(rows))
	for _, row := range rows {
		combined = append(combined, combine(row, dataById[row.ID]))
	}
	return combined, missing, nil
}

func (r *PartnerRepository) GetById(partnerId string) (*CombinedPartner, error) {
	combined, missing, err := r.GetByIds([]string{partnerId})
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 || len(combined) == 0 {
		return nil, nil
	}
	return combined[0], nil
}

func (r *PartnerRepository) Edit(partnerId string, data map[string]any) (*CombinedPartner, error) {
	existing, err := r.GetById(partnerId)
	if err != nil || existing == nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fields := bson.M{}
	for key, value := range data {
		if key != "_id" && key != "event_id" {
			fields[key] = value
		}
	}

	if _, err := r.mongo.Collection(dataCollection).UpdateOne(ctx, bson.M{"_id": partnerId}, bson.M{"$set": fields}); err != nil {
		slog.Error("Partner Edit Mongo failed", "error", err, "partner_id", partnerId)
		return nil, err
	}

	return r.GetById(partnerId)
}

func (r *PartnerRepository) Delete(partnerId string) (*CombinedPartner, error) {
	existing, err := r.GetById(partnerId)
	if err != nil || existing == nil {
		return nil, err
	}

	if err := r.db.Where("id = ?", partnerId).Delete(&model.Partner{}).Error; err != nil {
		slog.Error("Partner Delete Postgres failed", "error", err, "partner_id", partnerId)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := r.mongo.Collection(dataCollection).DeleteOne(ctx, bson.M{"_id": partnerId}); err != nil {
		slog.Warn("Partner Delete Mongo cleanup failed", "error", err, "partner_id", partnerId)
	}

	return existing, nil
}

func (r *PartnerRepository) getDataByIds(ids []string) (map[string]map[string]any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := r.mongo.Collection(dataCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get mongo partners: %w", err)
	}
	defer cursor.Close(ctx)

	dataById := map[string]map[string]any{}
	for cursor.Next(ctx) {
		var doc map[string]any
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		id, ok := doc["_id"].(string)
		if !ok {
			continue
		}
		delete(doc, "_id")
		delete(doc, "event_id")
		dataById[id] = doc
	}

	return dataById, cursor.Err()
}

func combine(row *model.Partner, data map[string]any) *CombinedPartner {
	if data == nil {
		data = map[string]any{}
	}
	return &CombinedPartner{
		ID:          row.ID,
		EventID:     row.EventID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		DynamicData: data,
	}
}
