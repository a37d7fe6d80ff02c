package models

import "time"

// TimeModel is embedded inline in admin-managed documents.
type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SetCreatedAtUpdatedAt stamps a document about to be inserted.
func (m *TimeModel) SetCreatedAtUpdatedAt() {
	now := time.Now()
	m.CreatedAt, m.UpdatedAt = now, now
}
