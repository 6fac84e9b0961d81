package models

import (
	"encoding/json"
	"time"
)

// Audit operations recorded by the hit handlers
const (
	OperationCreate    = "CREATE"
	OperationGetAll    = "GET_ALL"
	OperationGetSingle = "GET_SINGLE"
	OperationUpdate    = "UPDATE"
	OperationDelete    = "DELETE"
)

// AuditLogEntry represents a single operation performed through the hit API
type AuditLogEntry struct {
	ID             int64     `json:"id" db:"id"`
	Operation      string    `json:"operation" db:"operation"`
	Endpoint       string    `json:"endpoint" db:"endpoint"`
	RequestType    string    `json:"request_type" db:"request_type"`
	UserAgent      string    `json:"user_agent" db:"user_agent"`
	RequestBody    *string   `json:"request_body" db:"request_body"`
	ResponseStatus int       `json:"response_status" db:"response_status"`
	Timestamp      time.Time `json:"timestamp" db:"timestamp"`
}

// AuditRecord carries what a handler knows about an operation it is about to answer
type AuditRecord struct {
	Operation string
	Endpoint  string
	Method    string
	UserAgent string
	Payload   json.RawMessage
	Status    int
}

// Entry converts the record into a persistable entry stamped with the current UTC time
func (r AuditRecord) Entry() *AuditLogEntry {
	entry := &AuditLogEntry{
		Operation:      r.Operation,
		Endpoint:       r.Endpoint,
		RequestType:    r.Method,
		UserAgent:      r.UserAgent,
		ResponseStatus: r.Status,
		Timestamp:      Now(),
	}

	if len(r.Payload) > 0 {
		body := string(r.Payload)
		entry.RequestBody = &body
	}

	return entry
}
