package requests

// UpsertUser is the profile a client may write about itself. Role is not part
// of it and can only be changed by an admin.
type UpsertUser struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}
