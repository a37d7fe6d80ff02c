package responses

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
