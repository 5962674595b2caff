package attendance

import "github.com/painel-equipe/presenca-backend-go/internal/domain/employee"

// Snapshot is the current attendance picture: how many employees are
// logged in and who they are, newest first.
type Snapshot struct {
	Total int                 `json:"total"`
	List  []employee.Employee `json:"list"`
}

type BulkSetRequest struct {
	LoggedIn []int64 `json:"logados"`
}

type BulkSetResponse struct {
	Success       bool `json:"success"`
	TotalLoggedIn int  `json:"totalLogados"`
}

type SetLoggedInResponse struct {
	Success bool `json:"success"`
}
