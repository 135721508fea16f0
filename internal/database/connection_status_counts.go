package database

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ConnectionStatusCounts summarizes the non-deprecated connections of a workspace by latest sync outcome.
type ConnectionStatusCounts struct {
	Running   int `json:"running"`
	Healthy   int `json:"healthy"`
	Failed    int `json:"failed"`
	Paused    int `json:"paused"`
	NotSynced int `json:"not_synced"`
}

func sumWhen(cond string) string {
	return fmt.Sprintf("COALESCE(SUM(CASE WHEN %s THEN 1 ELSE 0 END), 0)", cond)
}

func quotedJobStatuses(statuses []JobStatus) string {
	quoted := make([]string, 0, len(statuses))
	for _, s := range statuses {
		quoted = append(quoted, "'"+string(s)+"'")
	}
	return strings.Join(quoted, ", ")
}

// GetConnectionStatusCounts counts connections per status. Inactive connections count only as paused.
func (s *service) GetConnectionStatusCounts(ctx context.Context, workspaceId uuid.UUID) (*ConnectionStatusCounts, error) {
	notPaused := fmt.Sprintf("%s <> '%s'", colConnectionStatus, ConnectionStatusInactive)

	var counts ConnectionStatusCounts
	err := fromConnectionListing(s.sq.Select(
		sumWhen(fmt.Sprintf("%s AND %s = '%s'", notPaused, colLatestJobStatus, JobStatusRunning)),
		sumWhen(fmt.Sprintf("%s AND %s = '%s'", notPaused, colLatestJobStatus, JobStatusSucceeded)),
		sumWhen(fmt.Sprintf("%s AND %s IN (%s)", notPaused, colLatestJobStatus, quotedJobStatuses(failedJobStatuses))),
		sumWhen(fmt.Sprintf("%s = '%s'", colConnectionStatus, ConnectionStatusInactive)),
		sumWhen(fmt.Sprintf("%s AND %s IS NULL", notPaused, colLatestJobStatus)),
	)).
		Where(sq.Eq{colSourceWorkspaceId: workspaceId}).
		Where(sq.NotEq{colConnectionStatus: ConnectionStatusDeprecated}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(
			&counts.Running,
			&counts.Healthy,
			&counts.Failed,
			&counts.Paused,
			&counts.NotSynced,
		)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count connection statuses")
	}

	return &counts, nil
}
