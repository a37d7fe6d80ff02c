package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Specialty string             `json:"specialty" bson:"specialty"`
	Img       string             `json:"img,omitempty" bson:"img,omitempty"`
	TimeModel `bson:",inline"`
}
