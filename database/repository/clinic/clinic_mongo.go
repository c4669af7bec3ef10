package clinicRepo

import (
	"context"
	"fmt"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsDocID is the fixed _id of the singleton settings document.
const settingsDocID = "clinic-settings"

type MongoClinicRepo struct {
	coll *mongo.Collection
}

func NewMongoClinicRepo() *MongoClinicRepo {
	return &MongoClinicRepo{coll: database.DB().Collection("clinic")}
}

func (repo *MongoClinicRepo) GetSettings(ctx context.Context) (*models.ClinicSettings, error) {
	var doc struct {
		models.ClinicSettings `bson:",inline"`
	}
	err := repo.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clinic settings: %w", err)
	}
	return &doc.ClinicSettings, nil
}

func (repo *MongoClinicRepo) UpsertSettings(ctx context.Context, settings *models.ClinicSettings) error {
	opts := options.Replace().SetUpsert(true)
	doc := bson.M{
		"_id":          settingsDocID,
		"slotMinutes":  settings.SlotMinutes,
		"timezone":     settings.Timezone,
		"workHours":    settings.WorkHours,
		"breaks":       settings.Breaks,
		"maxDaysAhead": settings.MaxDaysAhead,
	}
	if _, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save clinic settings: %w", err)
	}
	return nil
}
