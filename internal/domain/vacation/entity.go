package vacation

// Entry is a scheduled vacation month. The name is free-form and not
// required to match an employee record.
type Entry struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Month int    `json:"mes"`
}
