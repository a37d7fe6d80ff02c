package responses

import (
	"doctors-portal-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceWithAvailability struct {
	ID             primitive.ObjectID `json:"_id"`
	Name           string             `json:"name"`
	Slots          []string           `json:"slots"`
	AvailableSlots []string           `json:"availableSlots"`
}

type ServiceList struct {
	Services []models.Service `json:"services"`
}

type Specialization struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}
