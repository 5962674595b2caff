package vacation

type CreateRequest struct {
	Name  string `json:"nome"`
	Month int    `json:"mes"`
}
