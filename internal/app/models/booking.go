package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Patient     string             `json:"patient" bson:"patient"`
	PatientName string             `json:"patientName" bson:"patientName"`
	Treatment   string             `json:"treatment" bson:"treatment"`
	Date        string             `json:"date" bson:"date"`
	Slot        string             `json:"slot" bson:"slot"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt,omitempty"`
}
