package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Role      Role               `json:"role,omitempty" bson:"role,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) EffectiveRole() Role {
	if u == nil || u.Role == "" {
		return RolePatient
	}
	return u.Role
}

func (u *User) HasRole(role Role) bool {
	return u != nil && u.EffectiveRole() == role
}
