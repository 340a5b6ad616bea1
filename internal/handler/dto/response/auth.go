package response

import (
	"hotel-frontdesk/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	Staff       queries.StaffView `json:"staff"`
}
