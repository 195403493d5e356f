package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// AuditRecorder writes audit entries through the log repository, stamping
// them with the acting user from the context. Recording is best-effort: a
// failed append is logged and swallowed so it never fails the mutation it
// describes.
type AuditRecorder struct {
	logs ports.LogRepository
	log  zerolog.Logger
}

// NewAuditRecorder builds an AuditRecorder over the given log repository.
func NewAuditRecorder(logs ports.LogRepository, log zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{logs: logs, log: log}
}

func (a *AuditRecorder) Record(ctx context.Context, entry ports.AuditEntry) {
	actor := ports.ActorFrom(ctx)
	e := &domain.LogEntry{
		Type:        entry.Type,
		Action:      entry.Action,
		Description: entry.Description,
		Metadata:    entry.Metadata,
		UserID:      actor.ID,
		UserName:    actor.Name,
	}
	if err := a.logs.Append(ctx, e); err != nil {
		a.log.Warn().Err(err).Str("action", entry.Action).Msg("failed to append audit entry")
	}
}
