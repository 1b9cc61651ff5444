package logic

import (
	"context"
	"time"

	"cakecollate/pkg/domain"
)

// AuditStatus reports whether an audited command succeeded.
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
)

// AuditEntry records one committed change, or one failed command.
type AuditEntry struct {
	Operation string
	Entity    domain.EntityType
	Action    domain.Action
	Key       string
	Status    AuditStatus
	Error     string
	Duration  time.Duration
	Timestamp time.Time
}

// AuditRecorder receives audit entries after each command.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}

type noopAuditRecorder struct{}

func (noopAuditRecorder) Record(context.Context, AuditEntry) {}

type keyed interface{ Key() string }

func changeKey(c domain.Change) string {
	if k, ok := c.After.(keyed); ok {
		return k.Key()
	}
	if k, ok := c.Before.(keyed); ok {
		return k.Key()
	}
	return ""
}
