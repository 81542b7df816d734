package models

import "time"

type CheckResponse struct {
	Code      string     `json:"code"`
	Valid     bool       `json:"valid"`
	Message   string     `json:"message"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

func NewCheckResponse(c Check) CheckResponse {
	resp := CheckResponse{
		Code:    c.Code,
		Valid:   c.Valid,
		Message: c.Message,
	}
	if c.CheckedAt.Valid {
		t := c.CheckedAt.Time
		resp.CheckedAt = &t
	}
	return resp
}
