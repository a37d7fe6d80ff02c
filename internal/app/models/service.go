package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is one bookable treatment. Slots is the full menu of times it can
// be booked at on any date.
type Service struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Slots []string           `json:"slots" bson:"slots"`
}

func (s *Service) OffersSlot(slot string) bool {
	for _, candidate := range s.Slots {
		if candidate == slot {
			return true
		}
	}
	return false
}
