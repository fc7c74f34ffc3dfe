package service

import (
	"context"
	"fmt"
	"time"

	"taskmanager/internal/app/timeline"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type AuditService struct {
	auditLogRepository ports.AuditLogRepository
	location           *time.Location
	now                func() time.Time
}

// NewAuditService builds the read side of the audit log. Calendar days for
// timelines are interpreted in location.
func NewAuditService(auditLogRepository ports.AuditLogRepository, location *time.Location) *AuditService {
	if location == nil {
		location = time.Local
	}
	return &AuditService{auditLogRepository: auditLogRepository, location: location, now: time.Now}
}

var _ ports.AuditService = (*AuditService)(nil)

func (s *AuditService) TaskHistory(ctx context.Context, taskID string) ([]domain.AuditLogEntry, error) {
	entries, err := s.auditLogRepository.FindByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("find task audit logs: %w", err)
	}
	return entries, nil
}

// UserTimeline replays the user's entries for day (YYYY-MM-DD, today when
// empty).
func (s *AuditService) UserTimeline(ctx context.Context, userID string, day string) (domain.Timeline, error) {
	target := s.now().In(s.location)
	if day != "" {
		parsed, err := time.ParseInLocation(domain.DateLayout, day, s.location)
		if err != nil {
			return domain.Timeline{}, domain.ErrInvalidDate
		}
		target = parsed
	}

	from, to := timeline.DayBounds(target, s.location)
	logs, err := s.auditLogRepository.FindByActorBetween(ctx, userID, from.UTC(), to.UTC())
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("find user audit logs: %w", err)
	}

	return domain.Timeline{
		Date:    from.Format(domain.DateLayout),
		Entries: timeline.Build(logs, s.location),
		Logs:    logs,
	}, nil
}
