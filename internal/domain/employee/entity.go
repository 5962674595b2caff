package employee

// Employee is a tracked staff member. JSON field names follow the
// dashboard's existing API contract.
type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Status   Status `json:"status"`
	LoggedIn bool   `json:"logado"`
}

type Status string

const (
	StatusActive  Status = "active"
	StatusOnLeave Status = "on_leave"
	StatusSick    Status = "sick"
	StatusCompOff Status = "comp_off"
)

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusSick, StatusCompOff:
		return true
	}
	return false
}
