package domain

import "time"

// AuditAction identifies what kind of operation an audit event records.
type AuditAction string

const (
	AuditMesaEstado   AuditAction = "mesa_cambio_estado"
	AuditLoginAttempt AuditAction = "login"
)

// AuditEvent is an append-only trail entry. EntityKey shards events across
// dispatcher workers so entries for the same entity stay ordered.
type AuditEvent struct {
	Action    AuditAction
	EntityKey string
	UserID    int
	Username  string
	Detail    string
	Success   bool
	Timestamp time.Time
}
