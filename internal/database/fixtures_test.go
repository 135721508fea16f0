package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rmorlok/syncstore/internal/apctx"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)

// fixture is a migrated database with one organization, one workspace and one source and destination definition.
type fixture struct {
	t         *testing.T
	ctx       context.Context
	cfg       config.C
	db        DB
	raw       *sql.DB
	workspace *Workspace
	sourceDef *ActorDefinition
	destDef   *ActorDefinition
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, db, raw := MustApplyBlankTestDbConfigRaw(t, nil)
	ctx := apctx.NewBuilderBackground().WithFixedClock(fixtureNow).Build()

	f := &fixture{
		t:   t,
		ctx: ctx,
		cfg: cfg,
		db:  db,
		raw: raw,
	}

	org := &Organization{Id: uuid.New(), Name: "acme"}
	require.NoError(t, db.CreateOrganization(ctx, org))

	f.workspace = f.newWorkspace(org.Id, "default")
	f.sourceDef = f.newActorDefinition("postgres", ActorTypeSource)
	f.destDef = f.newActorDefinition("snowflake", ActorTypeDestination)

	return f
}

func (f *fixture) newWorkspace(orgId uuid.UUID, slug string) *Workspace {
	f.t.Helper()

	w := &Workspace{Id: uuid.New(), OrganizationId: orgId, Name: slug, Slug: slug}
	require.NoError(f.t, f.db.CreateWorkspace(f.ctx, w))
	return w
}

func (f *fixture) newActorDefinition(name string, actorType ActorType) *ActorDefinition {
	f.t.Helper()

	ad := &ActorDefinition{
		Id:               uuid.New(),
		Name:             name,
		ActorType:        actorType,
		DockerRepository: "syncstore/" + string(actorType) + "-" + name,
		DockerImageTag:   "1.0.0",
	}
	require.NoError(f.t, f.db.CreateActorDefinition(f.ctx, ad))
	return ad
}

func (f *fixture) newActor(workspaceId uuid.UUID, def *ActorDefinition, name string) *Actor {
	f.t.Helper()

	a := &Actor{
		Id:                uuid.New(),
		WorkspaceId:       workspaceId,
		ActorDefinitionId: def.Id,
		Name:              name,
		ActorType:         def.ActorType,
		Configuration:     ActorConfiguration(`{"host":"localhost"}`),
	}
	require.NoError(f.t, f.db.CreateActor(f.ctx, a))
	return a
}

func (f *fixture) source(name string) *Actor {
	return f.newActor(f.workspace.Id, f.sourceDef, name)
}

func (f *fixture) destination(name string) *Actor {
	return f.newActor(f.workspace.Id, f.destDef, name)
}

func (f *fixture) connection(name string, src, dst *Actor, status ConnectionStatus) *Connection {
	f.t.Helper()

	c := &Connection{
		Id:            uuid.New(),
		Name:          name,
		SourceId:      src.Id,
		DestinationId: dst.Id,
		Status:        status,
	}
	require.NoError(f.t, f.db.CreateConnection(f.ctx, c))
	return c
}

func (f *fixture) syncJob(c *Connection, status JobStatus, at time.Time) *Job {
	f.t.Helper()

	j := &Job{
		ConfigType: JobConfigTypeSync,
		Scope:      c.Id.String(),
		Status:     status,
		CreatedAt:  at,
	}
	require.NoError(f.t, f.db.CreateJob(f.ctx, j))
	return j
}

func (f *fixture) query() StandardSyncQuery {
	return StandardSyncQuery{WorkspaceId: f.workspace.Id}
}

// listAll pages through a listing and returns every page, including the final empty one.
func (f *fixture) listAll(query StandardSyncQuery, p CursorPagination) [][]ConnectionWithJobInfo {
	f.t.Helper()

	var pages [][]ConnectionWithJobInfo
	next := &p
	for i := 0; next != nil; i++ {
		require.Less(f.t, i, 1000, "pagination did not terminate")

		page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, query, *next)
		require.NoError(f.t, err)
		pages = append(pages, page.Connections)

		if len(page.Connections) == 0 {
			require.Nil(f.t, page.Next)
		} else {
			require.NotNil(f.t, page.Next)
		}
		next = page.Next
	}

	return pages
}

func connectionNames(rows []ConnectionWithJobInfo) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Connection.Name)
	}
	return names
}

func flatten(pages [][]ConnectionWithJobInfo) []ConnectionWithJobInfo {
	var all []ConnectionWithJobInfo
	for _, p := range pages {
		all = append(all, p...)
	}
	return all
}
