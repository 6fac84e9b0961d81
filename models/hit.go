package models

import (
	"time"
)

// Hit represents one recorded API call
type Hit struct {
	ID          int64     `json:"id" db:"id"`
	RequestType string    `json:"request_type" db:"request_type"`
	Endpoint    string    `json:"endpoint" db:"endpoint"`
	UserAgent   string    `json:"user_agent" db:"user_agent"`
	RequestBody *string   `json:"request_body" db:"request_body"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// NewHit builds a hit stamped with the current UTC time
func NewHit(method, endpoint, userAgent string, body *string) *Hit {
	return &Hit{
		RequestType: method,
		Endpoint:    endpoint,
		UserAgent:   userAgent,
		RequestBody: body,
		Timestamp:   Now(),
	}
}

// Apply overwrites the mutable fields of the hit from an update request.
// The user agent comes from the current request; the timestamp is kept.
func (h *Hit) Apply(method, userAgent string, payload *HitPayload) {
	h.RequestType = method
	h.UserAgent = userAgent
	h.RequestBody = payload.Body()
	if payload != nil && payload.Endpoint != nil {
		h.Endpoint = *payload.Endpoint
	}
}
