package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reserve claims a slot: marker insert plus appointment insert in one
// multi-document transaction. Exclusivity comes from two layers that back
// each other up:
//
//  1. the in-transaction read of the marker, which fails fast with
//     ErrMarkerExists when the slot was claimed before we started, and
//  2. the unique _id on the markers collection, which rejects the second of
//     two concurrent inserts at write time.
//
// session.WithTransaction re-runs the callback on transient transaction and
// commit conflicts, so a loser of a write-write race re-reads the marker and
// lands on ErrMarkerExists instead of committing a duplicate.
func (repo *MongoAppointmentRepo) Reserve(ctx context.Context, marker models.ReservationMarker, appt models.Appointment) error {
	client := repo.markers.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := repo.markers.CountDocuments(sc, bson.M{"_id": marker.SlotKey})
		if err != nil {
			return nil, fmt.Errorf("marker lookup failed: %w", err)
		}
		if count > 0 {
			return nil, ErrMarkerExists
		}

		if _, err := repo.markers.InsertOne(sc, marker); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrMarkerExists
			}
			return nil, fmt.Errorf("insert reservation marker failed: %w", err)
		}

		if _, err := repo.appts.InsertOne(sc, appt); err != nil {
			return nil, fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, ErrMarkerExists) {
			return ErrMarkerExists
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}
