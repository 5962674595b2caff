package employee

type CreateRequest struct {
	Name   string `json:"nome"`
	Status string `json:"status,omitempty"`
}

type UpdateRequest struct {
	Name   string `json:"nome"`
	Status string `json:"status,omitempty"`
}
