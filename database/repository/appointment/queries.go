package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoAppointmentRepo) ExistingMarkerKeys(ctx context.Context, slotKeys []string) (map[string]struct{}, error) {
	if len(slotKeys) == 0 {
		return map[string]struct{}{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := repo.markers.Find(ctx, bson.M{"_id": bson.M{"$in": slotKeys}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation markers: %w", err)
	}
	defer cursor.Close(ctx)

	existing := make(map[string]struct{})
	for cursor.Next(ctx) {
		var doc struct {
			SlotKey string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding reservation marker: %w", err)
		}
		existing[doc.SlotKey] = struct{}{}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("marker cursor error: %w", err)
	}
	return existing, nil
}

func (repo *MongoAppointmentRepo) ActiveSlotKeys(ctx context.Context, slotKeys []string) (map[string]struct{}, error) {
	if len(slotKeys) == 0 {
		return map[string]struct{}{}, nil
	}

	filter := bson.M{
		"slotKey": bson.M{"$in": slotKeys},
		"status":  bson.M{"$in": models.ActiveStatuses},
	}
	opts := options.Find().SetProjection(bson.M{"slotKey": 1})
	cursor, err := repo.appts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active appointments: %w", err)
	}
	defer cursor.Close(ctx)

	active := make(map[string]struct{})
	for cursor.Next(ctx) {
		var doc struct {
			SlotKey string `bson:"slotKey"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		active[doc.SlotKey] = struct{}{}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("appointment cursor error: %w", err)
	}
	return active, nil
}

func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := repo.appts.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *MongoAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := repo.appts.Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// UpdateStatus sets only the status field. Cancelling does not release the
// reservation marker; the slot stays unavailable once claimed.
func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	update := bson.M{"$set": bson.M{
		"status":        status,
		"lastUpdatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	err := repo.appts.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	return &appt, nil
}
