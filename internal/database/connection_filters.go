package database

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ConnectionJobStatus is a bucket of latest-job outcomes that a listing can be filtered by.
type ConnectionJobStatus string

const (
	ConnectionJobStatusHealthy ConnectionJobStatus = "HEALTHY"
	ConnectionJobStatusFailed  ConnectionJobStatus = "FAILED"
	ConnectionJobStatusRunning ConnectionJobStatus = "RUNNING"
)

func IsValidConnectionJobStatus[T string | ConnectionJobStatus](s T) bool {
	switch ConnectionJobStatus(s) {
	case ConnectionJobStatusHealthy,
		ConnectionJobStatusFailed,
		ConnectionJobStatusRunning:
		return true
	default:
		return false
	}
}

// ActorStatus is the active/inactive state filter of a listing.
type ActorStatus string

const (
	ActorStatusActive   ActorStatus = "ACTIVE"
	ActorStatusInactive ActorStatus = "INACTIVE"
)

func IsValidActorStatus[T string | ActorStatus](s T) bool {
	switch ActorStatus(s) {
	case ActorStatusActive, ActorStatusInactive:
		return true
	default:
		return false
	}
}

func (s ActorStatus) connectionStatus() ConnectionStatus {
	if s == ActorStatusInactive {
		return ConnectionStatusInactive
	}
	return ConnectionStatusActive
}

// StandardSyncQuery is the structural scope of a connection listing.
type StandardSyncQuery struct {
	WorkspaceId    uuid.UUID   `json:"workspace_id"`
	SourceIds      []uuid.UUID `json:"source_ids,omitempty"`
	DestinationIds []uuid.UUID `json:"destination_ids,omitempty"`
	IncludeDeleted bool        `json:"include_deleted,omitempty"`
}

// Filters narrow a connection listing. Nil or empty fields do not constrain the result.
type Filters struct {
	SearchTerm               *string               `json:"search_term,omitempty"`
	SourceDefinitionIds      []uuid.UUID           `json:"source_definition_ids,omitempty"`
	DestinationDefinitionIds []uuid.UUID           `json:"destination_definition_ids,omitempty"`
	Statuses                 []ConnectionJobStatus `json:"statuses,omitempty"`
	States                   []ActorStatus         `json:"states,omitempty"`
	TagIds                   []uuid.UUID           `json:"tag_ids,omitempty"`
}

func (f *Filters) Validate() error {
	if f == nil {
		return nil
	}

	for _, s := range f.Statuses {
		if !IsValidConnectionJobStatus(s) {
			return errors.Wrapf(ErrInvalidArgument, "invalid connection job status filter '%s'", s)
		}
	}

	for _, s := range f.States {
		if !IsValidActorStatus(s) {
			return errors.Wrapf(ErrInvalidArgument, "invalid state filter '%s'", s)
		}
	}

	return nil
}

var (
	failedJobStatuses  = []JobStatus{JobStatusFailed, JobStatusCancelled, JobStatusIncomplete}
	healthyJobStatuses = []JobStatus{JobStatusSucceeded, JobStatusPending}
)

// latestSyncJobJoin selects the most recent sync job of each connection. Ties on created_at go to the higher job id.
var latestSyncJobJoin = fmt.Sprintf(
	"(SELECT j.scope, j.status, j.created_at, "+
		"ROW_NUMBER() OVER (PARTITION BY j.scope ORDER BY j.created_at DESC, j.id DESC) AS rn "+
		"FROM %s j WHERE j.config_type = '%s') lj ON lj.scope = CAST(c.id AS TEXT) AND lj.rn = 1",
	JobsTable,
	JobConfigTypeSync,
)

// fromConnectionListing adds the FROM clause shared by every connection listing query: connections joined to
// their source (src), destination (dst) and latest sync job (lj).
func fromConnectionListing(b sq.SelectBuilder) sq.SelectBuilder {
	return b.
		From(ConnectionsTable + " c").
		Join(ActorsTable + " src ON src.id = c.source_id").
		Join(ActorsTable + " dst ON dst.id = c.destination_id").
		LeftJoin(latestSyncJobJoin)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern that matches s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// likeContains matches a folded name column against a pattern folded by the same LOWER.
func likeContains(expr string, pattern string) sq.Sqlizer {
	return sq.Expr(expr+` LIKE `+lowerArg+` ESCAPE '\'`, pattern)
}

// buildConnectionFilterConditions builds the WHERE predicate shared by listing and counting connections. The
// result references the aliases set up by fromConnectionListing.
func buildConnectionFilterConditions(query StandardSyncQuery, filters *Filters) sq.And {
	conds := sq.And{sq.Eq{colSourceWorkspaceId: query.WorkspaceId}}

	if len(query.SourceIds) > 0 {
		conds = append(conds, sq.Eq{"c.source_id": query.SourceIds})
	}

	if len(query.DestinationIds) > 0 {
		conds = append(conds, sq.Eq{"c.destination_id": query.DestinationIds})
	}

	if !query.IncludeDeleted {
		conds = append(conds, sq.NotEq{colConnectionStatus: ConnectionStatusDeprecated})
	}

	if filters == nil {
		return conds
	}

	if filters.SearchTerm != nil && strings.TrimSpace(*filters.SearchTerm) != "" {
		pattern := containsPattern(strings.TrimSpace(*filters.SearchTerm))
		conds = append(conds, sq.Or{
			likeContains(colConnectionName, pattern),
			likeContains(colSourceName, pattern),
			likeContains(colDestinationName, pattern),
		})
	}

	if len(filters.SourceDefinitionIds) > 0 {
		conds = append(conds, sq.Eq{"src.actor_definition_id": filters.SourceDefinitionIds})
	}

	if len(filters.DestinationDefinitionIds) > 0 {
		conds = append(conds, sq.Eq{"dst.actor_definition_id": filters.DestinationDefinitionIds})
	}

	if len(filters.Statuses) > 0 {
		buckets := sq.Or{}
		for _, s := range dedupe(filters.Statuses) {
			switch s {
			case ConnectionJobStatusFailed:
				buckets = append(buckets, sq.Eq{colLatestJobStatus: failedJobStatuses})
			case ConnectionJobStatusRunning:
				buckets = append(buckets, sq.Eq{colLatestJobStatus: JobStatusRunning})
			case ConnectionJobStatusHealthy:
				buckets = append(buckets, sq.And{
					sq.Eq{colConnectionStatus: ConnectionStatusActive},
					sq.Or{
						sq.Eq{colLatestJobStatus: nil},
						sq.Eq{colLatestJobStatus: healthyJobStatuses},
					},
				})
			}
		}
		conds = append(conds, buckets)
	}

	if len(filters.States) > 0 {
		statuses := make([]ConnectionStatus, 0, len(filters.States))
		for _, s := range dedupe(filters.States) {
			statuses = append(statuses, s.connectionStatus())
		}
		conds = append(conds, sq.Eq{colConnectionStatus: statuses})
	}

	if len(filters.TagIds) > 0 {
		conds = append(conds, sq.Expr(
			fmt.Sprintf(
				"EXISTS (SELECT 1 FROM %s ct WHERE ct.connection_id = c.id AND ct.tag_id IN (%s))",
				ConnectionTagsTable,
				sq.Placeholders(len(filters.TagIds)),
			),
			uuidArgs(filters.TagIds)...,
		))
	}

	return conds
}

func dedupe[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func uuidArgs(ids []uuid.UUID) []interface{} {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return args
}
