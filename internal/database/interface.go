package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rmorlok/syncstore/internal/util/pagination"
)

//go:generate mockgen -source=./interface.go -destination=./mock/db.go -package=mock
type DB interface {
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) bool
	Close() error

	/*
	 * Organizations & workspaces
	 */
	CreateOrganization(ctx context.Context, o *Organization) error
	GetOrganization(ctx context.Context, id uuid.UUID) (*Organization, error)
	CreateWorkspace(ctx context.Context, w *Workspace) error
	GetWorkspace(ctx context.Context, id uuid.UUID) (*Workspace, error)

	/*
	 * Actors
	 */
	CreateActorDefinition(ctx context.Context, ad *ActorDefinition) error
	GetActorDefinition(ctx context.Context, id uuid.UUID) (*ActorDefinition, error)
	CreateActor(ctx context.Context, a *Actor) error
	GetActor(ctx context.Context, id uuid.UUID) (*Actor, error)
	ListActorsForWorkspace(ctx context.Context, workspaceId uuid.UUID, actorType *ActorType, includeTombstone bool) ([]Actor, error)
	TombstoneActor(ctx context.Context, id uuid.UUID) error

	/*
	 * Connections
	 */
	CreateConnection(ctx context.Context, c *Connection) error
	GetConnection(ctx context.Context, id uuid.UUID) (*Connection, error)
	SetConnectionStatus(ctx context.Context, id uuid.UUID, status ConnectionStatus) error
	DeprecateConnection(ctx context.Context, id uuid.UUID) error
	DisableConnections(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	ListConnectionIdsForWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]uuid.UUID, error)
	ListConnectionsByActor(ctx context.Context, actorId uuid.UUID, includeDeprecated bool) ([]Connection, error)

	/*
	 * Connection listings
	 */
	ListWorkspaceConnectionsCursorPaginated(ctx context.Context, query StandardSyncQuery, p CursorPagination) (*ConnectionPage, error)
	CountWorkspaceConnections(ctx context.Context, query StandardSyncQuery, filters *Filters) (int, error)
	EnumerateWorkspaceConnections(ctx context.Context, query StandardSyncQuery, p CursorPagination, callback func(pagination.PageResult[ConnectionWithJobInfo]) (keepGoing bool, err error)) error
	GetConnectionWithJobInfo(ctx context.Context, id uuid.UUID) (*ConnectionWithJobInfo, error)
	BuildCursorPagination(ctx context.Context, workspaceId uuid.UUID, anchorId *uuid.UUID, sortKey SortKey, filters *Filters, ascending bool, pageSize int) (*CursorPagination, error)
	EncodeConnectionListToken(ctx context.Context, query StandardSyncQuery, p CursorPagination) (string, error)
	DecodeConnectionListToken(ctx context.Context, token string) (*ConnectionListToken, error)
	GetConnectionStatusCounts(ctx context.Context, workspaceId uuid.UUID) (*ConnectionStatusCounts, error)

	/*
	 * Tags
	 */
	CreateTag(ctx context.Context, t *Tag) error
	ListTagsForWorkspace(ctx context.Context, workspaceId uuid.UUID) ([]Tag, error)
	AddTagsToConnection(ctx context.Context, connectionId uuid.UUID, tagIds []uuid.UUID) error
	RemoveTagFromConnection(ctx context.Context, connectionId uuid.UUID, tagId uuid.UUID) error

	/*
	 * Jobs
	 */
	CreateJob(ctx context.Context, j *Job) error
	CreateSyncJob(ctx context.Context, connectionId uuid.UUID, status JobStatus) (*Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	SetJobStatus(ctx context.Context, id int64, status JobStatus) error

	/*
	 * Schema management
	 */
	CreateSchemaManagement(ctx context.Context, sm *SchemaManagement) error
	GetSchemaManagement(ctx context.Context, connectionId uuid.UUID) (*SchemaManagement, error)

	/*
	 * Secrets
	 */
	WriteSecret(ctx context.Context, coordinate string, payload string) error
	ReadSecret(ctx context.Context, coordinate string) (string, error)
	DeleteSecret(ctx context.Context, coordinate string) error
}
