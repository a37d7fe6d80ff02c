package models

import "fmt"

// Role is a closed set. Records written before roles existed carry no role
// at all, which reads as RolePatient.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case "", RolePatient:
		return RolePatient, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

func (r Role) String() string {
	if r == "" {
		return string(RolePatient)
	}
	return string(r)
}
