package participantmodel

import (
	"context"
	"log/slog"
	"time"

	"github.com/eventflow-app/eventflow-api/type/shared/model"
	"go.mongodb.org/mongo-driver/bson"
)

const dataCollection = "participants"

func mongoCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func (r *ParticipantRepository) addToMongo(eventId string, participants []map[string]any, ids []string) error {
	ctx, cancel := mongoCtx()
	defer cancel()

	docs := make([]any, len(participants))
	for i, data := range participants {
		doc := bson.M{"_id": ids[i], "event_id": eventId}
		for key, value := range data {
			if key != "_id" && key != "event_id" {
				doc[key] = value
			}
		}
		docs[i] = doc
	}

	_, err := r.mongo.Collection(dataCollection).InsertMany(ctx, docs)
	return err
}

func (r *ParticipantRepository) getDataByIds(ids []string) (map[string]map[string]any, error) {
	ctx, cancel := mongoCtx()
	defer cancel()

	cursor, err := r.mongo.Collection(dataCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
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

func (r *ParticipantRepository) updateInMongo(participantId string, data map[string]any) error {
	ctx, cancel := mongoCtx()
	defer cancel()

	fields := bson.M{}
	for key, value := range data {
		if key != "_id" && key != "event_id" {
			fields[key] = value
		}
	}

	_, err := r.mongo.Collection(dataCollection).UpdateOne(ctx,
		bson.M{"_id": participantId},
		bson.M{"$set": fields})
	return err
}

// removeFromMongo is best effort; it is used both for deletes and for
// rolling back after a failed Postgres insert.
func (r *ParticipantRepository) removeFromMongo(ids []string) {
	ctx, cancel := mongoCtx()
	defer cancel()

	if _, err := r.mongo.Collection(dataCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		slog.Warn("Participant Mongo cleanup failed", "error", err, "count", len(ids))
	}
}

func combine(row *model.Participant, data map[string]any) *CombinedParticipant {
	if data == nil {
		data = map[string]any{}
	}
	return &CombinedParticipant{
		ID:          row.ID,
		EventID:     row.EventID,
		EmailStatus: row.EmailStatus,
		CheckedIn:   row.CheckedIn,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		DynamicData: data,
	}
}
