package responses

type IsAdmin struct {
	Admin bool `json:"admin"`
}

type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type UpsertUser struct {
	Result UpdateResult `json:"result"`
	Token  string       `json:"token"`
}
