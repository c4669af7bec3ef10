package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the appointment queries rely on. The
// markers collection needs none beyond the implicit unique _id index, which
// is what makes marker creation a create-if-absent write.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Membership queries by slotKey + status (availability resolution)
		{
			Keys:    bson.D{{Key: "slotKey", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("slotkey_status_idx"),
		},
		// Day schedule view: equality on date, ordered by startTime
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("date_starttime_idx"),
		},
	}

	_, err := repo.appts.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
