package requests

type CreateDoctor struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
	Img       string `json:"img" validate:"omitempty,url"`
	// Image is an optional base64 data URL, e.g. data:image/png;base64,....
	Image string `json:"image,omitempty"`
}
