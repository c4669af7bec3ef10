package appointmentRepo

import (
	"clinicbook/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository on two collections:
// "reservation_markers" keyed by slot key (_id) and "appointments".
type MongoAppointmentRepo struct {
	markers *mongo.Collection
	appts   *mongo.Collection
}

func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	db := database.DB()
	return &MongoAppointmentRepo{
		markers: db.Collection("reservation_markers"),
		appts:   db.Collection("appointments"),
	}
}
