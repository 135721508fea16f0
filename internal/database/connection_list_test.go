package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/util"
	"github.com/rmorlok/syncstore/internal/util/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorkspaceConnections_LastSyncDescending(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")

	a := f.connection("A", src, dst, ConnectionStatusActive)
	b := f.connection("B", src, dst, ConnectionStatusActive)
	c := f.connection("C", src, dst, ConnectionStatusActive)

	f.syncJob(b, JobStatusSucceeded, fixtureNow.Add(-2*time.Hour))
	f.syncJob(c, JobStatusSucceeded, fixtureNow.Add(-1*time.Hour))

	p := CursorPagination{Cursor: NewCursor(SortKeyLastSync, false, nil), PageSize: 2}

	page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), p)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B"}, connectionNames(page.Connections))
	require.NotNil(t, page.Next)
	require.Equal(t, b.Id, *page.Next.Cursor.CursorId)
	require.Equal(t, fixtureNow.Add(-2*time.Hour), *page.Next.Cursor.LastSync)
	require.Equal(t, fixtureNow.Add(-2*time.Hour).Unix(), *page.Next.Cursor.LastSyncEpochSeconds())
	require.Nil(t, page.Next.Cursor.ConnectionName)

	page, err = f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), *page.Next)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, connectionNames(page.Connections))
	require.Equal(t, a.Id, page.Connections[0].Connection.Id)
	require.Nil(t, page.Connections[0].LatestJobCreatedAt)
	require.Nil(t, page.Connections[0].LatestJobStatus)
	require.NotNil(t, page.Next)
	require.Nil(t, page.Next.Cursor.LastSync)

	page, err = f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), *page.Next)
	require.NoError(t, err)
	require.Empty(t, page.Connections)
	require.Nil(t, page.Next)

	count, err := f.db.CountWorkspaceConnections(f.ctx, f.query(), nil)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestListWorkspaceConnections_LastSyncAscending(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")

	a := f.connection("A", src, dst, ConnectionStatusActive)
	b := f.connection("B", src, dst, ConnectionStatusActive)
	c := f.connection("C", src, dst, ConnectionStatusActive)
	d := f.connection("D", src, dst, ConnectionStatusActive)

	f.syncJob(b, JobStatusSucceeded, fixtureNow.Add(-2*time.Hour))
	f.syncJob(c, JobStatusSucceeded, fixtureNow.Add(-1*time.Hour))

	pages := f.listAll(f.query(), CursorPagination{Cursor: NewCursor(SortKeyLastSync, true, nil), PageSize: 1})
	all := flatten(pages)
	require.Len(t, all, 4)

	// Never synced first, by id
	neverSynced := []uuid.UUID{a.Id, d.Id}
	if strings.Compare(a.Id.String(), d.Id.String()) > 0 {
		neverSynced = []uuid.UUID{d.Id, a.Id}
	}
	require.Equal(t, neverSynced[0], all[0].Connection.Id)
	require.Equal(t, neverSynced[1], all[1].Connection.Id)
	require.Equal(t, []string{"B", "C"}, connectionNames(all[2:]))
}

func TestListWorkspaceConnections_LatestJobWins(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")
	c := f.connection("conn", src, dst, ConnectionStatusActive)

	f.syncJob(c, JobStatusSucceeded, fixtureNow.Add(-3*time.Hour))
	f.syncJob(c, JobStatusFailed, fixtureNow.Add(-1*time.Hour))
	f.syncJob(c, JobStatusSucceeded, fixtureNow.Add(-2*time.Hour))

	// Non-sync jobs do not count
	require.NoError(t, f.db.CreateJob(f.ctx, &Job{
		ConfigType: JobConfigTypeResetConnection,
		Scope:      c.Id.String(),
		Status:     JobStatusRunning,
		CreatedAt:  fixtureNow,
	}))

	row, err := f.db.GetConnectionWithJobInfo(f.ctx, c.Id)
	require.NoError(t, err)
	require.NotNil(t, row.LatestJobStatus)
	require.Equal(t, JobStatusFailed, *row.LatestJobStatus)
	require.Equal(t, fixtureNow.Add(-1*time.Hour), *row.LatestJobCreatedAt)

	// Same created_at: the later job wins
	f.syncJob(c, JobStatusRunning, fixtureNow.Add(-1*time.Hour))
	row, err = f.db.GetConnectionWithJobInfo(f.ctx, c.Id)
	require.NoError(t, err)
	require.Equal(t, JobStatusRunning, *row.LatestJobStatus)
}

func TestListWorkspaceConnections_FailedFilter(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")

	ok := f.connection("ok", src, dst, ConnectionStatusActive)
	broken := f.connection("broken", src, dst, ConnectionStatusActive)
	running := f.connection("running", src, dst, ConnectionStatusActive)
	f.connection("never", src, dst, ConnectionStatusActive)

	f.syncJob(ok, JobStatusSucceeded, fixtureNow.Add(-time.Hour))
	f.syncJob(broken, JobStatusFailed, fixtureNow.Add(-time.Hour))
	f.syncJob(running, JobStatusRunning, fixtureNow.Add(-time.Hour))

	filters := &Filters{Statuses: []ConnectionJobStatus{ConnectionJobStatusFailed}}

	page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), CursorPagination{
		Cursor: NewCursor(SortKeyConnectionName, true, filters),
	})
	require.NoError(t, err)
	require.Len(t, page.Connections, 1)
	require.Equal(t, broken.Id, page.Connections[0].Connection.Id)

	count, err := f.db.CountWorkspaceConnections(f.ctx, f.query(), filters)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestListWorkspaceConnections_HealthyRequiresActive(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")

	paused := f.connection("paused", src, dst, ConnectionStatusInactive)
	healthy := f.connection("healthy", src, dst, ConnectionStatusActive)
	never := f.connection("never", src, dst, ConnectionStatusActive)
	pending := f.connection("pending", src, dst, ConnectionStatusActive)
	cancelled := f.connection("cancelled", src, dst, ConnectionStatusActive)

	f.syncJob(paused, JobStatusSucceeded, fixtureNow.Add(-time.Hour))
	f.syncJob(healthy, JobStatusSucceeded, fixtureNow.Add(-time.Hour))
	f.syncJob(pending, JobStatusPending, fixtureNow.Add(-time.Hour))
	f.syncJob(cancelled, JobStatusCancelled, fixtureNow.Add(-time.Hour))

	list := func(filters *Filters) []uuid.UUID {
		var ids []uuid.UUID
		for _, r := range flatten(f.listAll(f.query(), CursorPagination{Cursor: NewCursor(SortKeyConnectionName, true, filters)})) {
			ids = append(ids, r.Connection.Id)
		}
		return ids
	}

	healthyIds := list(&Filters{Statuses: []ConnectionJobStatus{ConnectionJobStatusHealthy}})
	assert.ElementsMatch(t, []uuid.UUID{healthy.Id, never.Id, pending.Id}, healthyIds)
	assert.NotContains(t, healthyIds, paused.Id)

	inactiveIds := list(&Filters{States: []ActorStatus{ActorStatusInactive}})
	assert.Equal(t, []uuid.UUID{paused.Id}, inactiveIds)

	failedOrHealthy := list(&Filters{Statuses: []ConnectionJobStatus{ConnectionJobStatusFailed, ConnectionJobStatusHealthy}})
	assert.ElementsMatch(t, []uuid.UUID{healthy.Id, never.Id, pending.Id, cancelled.Id}, failedOrHealthy)
}

func TestListWorkspaceConnections_Filters(t *testing.T) {
	f := newFixture(t)
	otherSourceDef := f.newActorDefinition("mysql", ActorTypeSource)
	otherDestDef := f.newActorDefinition("bigquery", ActorTypeDestination)

	pg := f.source("Warehouse Postgres")
	my := f.newActor(f.workspace.Id, otherSourceDef, "orders_mysql")
	snow := f.destination("Snowflake")
	bq := f.newActor(f.workspace.Id, otherDestDef, "BigQuery 100%")

	c1 := f.connection("Orders to Snowflake", my, snow, ConnectionStatusActive)
	c2 := f.connection("Warehouse copy", pg, bq, ConnectionStatusActive)
	c3 := f.connection("Legacy", pg, snow, ConnectionStatusInactive)
	c4 := f.connection("Old", my, bq, ConnectionStatusDeprecated)

	tagA := &Tag{Id: uuid.New(), WorkspaceId: f.workspace.Id, Name: "finance", Color: "FF0000"}
	tagB := &Tag{Id: uuid.New(), WorkspaceId: f.workspace.Id, Name: "ops", Color: "00FF00"}
	require.NoError(t, f.db.CreateTag(f.ctx, tagA))
	require.NoError(t, f.db.CreateTag(f.ctx, tagB))
	require.NoError(t, f.db.AddTagsToConnection(f.ctx, c1.Id, []uuid.UUID{tagA.Id, tagB.Id}))
	require.NoError(t, f.db.AddTagsToConnection(f.ctx, c3.Id, []uuid.UUID{tagB.Id}))

	tests := []struct {
		name     string
		query    func() StandardSyncQuery
		filters  *Filters
		expected []uuid.UUID
	}{
		{
			name:     "no filters excludes deprecated",
			filters:  nil,
			expected: []uuid.UUID{c1.Id, c2.Id, c3.Id},
		},
		{
			name: "include deleted",
			query: func() StandardSyncQuery {
				q := f.query()
				q.IncludeDeleted = true
				return q
			},
			expected: []uuid.UUID{c1.Id, c2.Id, c3.Id, c4.Id},
		},
		{
			name:     "search matches connection name case-insensitively",
			filters:  &Filters{SearchTerm: util.ToPtr("orders")},
			expected: []uuid.UUID{c1.Id},
		},
		{
			name:     "search matches source name",
			filters:  &Filters{SearchTerm: util.ToPtr("WAREHOUSE post")},
			expected: []uuid.UUID{c2.Id, c3.Id},
		},
		{
			name:     "search matches destination name",
			filters:  &Filters{SearchTerm: util.ToPtr("snow")},
			expected: []uuid.UUID{c1.Id, c3.Id},
		},
		{
			name:     "search escapes percent",
			filters:  &Filters{SearchTerm: util.ToPtr("100%")},
			expected: []uuid.UUID{c2.Id},
		},
		{
			name:     "search escapes underscore",
			filters:  &Filters{SearchTerm: util.ToPtr("s_m")},
			expected: []uuid.UUID{c1.Id},
		},
		{
			name:     "blank search is ignored",
			filters:  &Filters{SearchTerm: util.ToPtr("   ")},
			expected: []uuid.UUID{c1.Id, c2.Id, c3.Id},
		},
		{
			name:     "source definition",
			filters:  &Filters{SourceDefinitionIds: []uuid.UUID{otherSourceDef.Id}},
			expected: []uuid.UUID{c1.Id},
		},
		{
			name:     "destination definition",
			filters:  &Filters{DestinationDefinitionIds: []uuid.UUID{otherDestDef.Id, uuid.New()}},
			expected: []uuid.UUID{c2.Id},
		},
		{
			name:     "active state",
			filters:  &Filters{States: []ActorStatus{ActorStatusActive}},
			expected: []uuid.UUID{c1.Id, c2.Id},
		},
		{
			name:     "both states",
			filters:  &Filters{States: []ActorStatus{ActorStatusActive, ActorStatusInactive, ActorStatusActive}},
			expected: []uuid.UUID{c1.Id, c2.Id, c3.Id},
		},
		{
			name:     "tags intersect",
			filters:  &Filters{TagIds: []uuid.UUID{tagB.Id}},
			expected: []uuid.UUID{c1.Id, c3.Id},
		},
		{
			name:     "tag with no connections",
			filters:  &Filters{TagIds: []uuid.UUID{uuid.New()}},
			expected: nil,
		},
		{
			name: "explicit source ids",
			query: func() StandardSyncQuery {
				q := f.query()
				q.SourceIds = []uuid.UUID{pg.Id}
				return q
			},
			expected: []uuid.UUID{c2.Id, c3.Id},
		},
		{
			name: "explicit destination ids",
			query: func() StandardSyncQuery {
				q := f.query()
				q.DestinationIds = []uuid.UUID{bq.Id}
				q.IncludeDeleted = true
				return q
			},
			expected: []uuid.UUID{c2.Id, c4.Id},
		},
		{
			name: "combined filters AND together",
			filters: &Filters{
				SearchTerm: util.ToPtr("snow"),
				States:     []ActorStatus{ActorStatusActive},
				TagIds:     []uuid.UUID{tagA.Id, tagB.Id},
			},
			expected: []uuid.UUID{c1.Id},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query := f.query()
			if test.query != nil {
				query = test.query()
			}

			var ids []uuid.UUID
			for _, r := range flatten(f.listAll(query, CursorPagination{Cursor: NewCursor(SortKeyConnectionName, true, test.filters), PageSize: 1})) {
				ids = append(ids, r.Connection.Id)
			}
			assert.ElementsMatch(t, test.expected, ids)

			count, err := f.db.CountWorkspaceConnections(f.ctx, query, test.filters)
			require.NoError(t, err)
			assert.Equal(t, len(test.expected), count)
		})
	}

	t.Run("tags are hydrated", func(t *testing.T) {
		row, err := f.db.GetConnectionWithJobInfo(f.ctx, c1.Id)
		require.NoError(t, err)
		require.Len(t, row.Tags, 2)
		assert.Equal(t, "finance", row.Tags[0].Name)
		assert.Equal(t, "ops", row.Tags[1].Name)
		assert.Equal(t, my.Name, row.SourceName)
		assert.Equal(t, snow.Name, row.DestinationName)
		assert.Equal(t, otherSourceDef.Id, row.SourceDefinitionId)
		assert.Equal(t, f.destDef.Id, row.DestinationDefinitionId)
		assert.Equal(t, f.workspace.Id, row.WorkspaceId)
	})
}

func TestListWorkspaceConnections_SearchFoldsUnicode(t *testing.T) {
	f := newFixture(t)
	src := f.source("Quelle")
	dst := f.destination("Ziel")
	aerger := f.connection("Ärger", src, dst, ConnectionStatusActive)
	eclair := f.connection("Éclair", src, dst, ConnectionStatusActive)
	f.connection("plain", src, dst, ConnectionStatusActive)

	tests := []struct {
		term     string
		expected uuid.UUID
	}{
		{term: "Ärger", expected: aerger.Id},
		{term: "ärger", expected: aerger.Id},
		{term: "ÄRGER", expected: aerger.Id},
		{term: "Ä", expected: aerger.Id},
		{term: "Écl", expected: eclair.Id},
		{term: "éCL", expected: eclair.Id},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			filters := &Filters{SearchTerm: util.ToPtr(tt.term)}

			count, err := f.db.CountWorkspaceConnections(f.ctx, f.query(), filters)
			require.NoError(t, err)
			require.Equal(t, 1, count)

			page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), CursorPagination{
				Cursor:   NewCursor(SortKeyConnectionName, true, filters),
				PageSize: 10,
			})
			require.NoError(t, err)
			require.Len(t, page.Connections, 1)
			require.Equal(t, tt.expected, page.Connections[0].Connection.Id)
		})
	}

}

func TestListWorkspaceConnections_WorkspaceIsolation(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")
	mine := f.connection("mine", src, dst, ConnectionStatusActive)

	ws, err := f.db.GetWorkspace(f.ctx, f.workspace.Id)
	require.NoError(t, err)
	other := f.newWorkspace(ws.OrganizationId, "other")
	otherSrc := f.newActor(other.Id, f.sourceDef, "src")
	otherDst := f.newActor(other.Id, f.destDef, "dst")
	f.connection("theirs", otherSrc, otherDst, ConnectionStatusActive)

	all := flatten(f.listAll(f.query(), CursorPagination{}))
	require.Len(t, all, 1)
	require.Equal(t, mine.Id, all[0].Connection.Id)

	ids, err := f.db.ListConnectionIdsForWorkspace(f.ctx, f.workspace.Id)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{mine.Id}, ids)
}

// compareListingRows orders two rows the way a listing sorted by sortKey ascending would.
func compareListingRows(a, b ConnectionWithJobInfo, sortKey SortKey) int {
	var c int
	switch sortKey {
	case SortKeyConnectionName:
		c = strings.Compare(strings.ToLower(a.Connection.Name), strings.ToLower(b.Connection.Name))
	case SortKeySourceName:
		c = strings.Compare(strings.ToLower(a.SourceName), strings.ToLower(b.SourceName))
	case SortKeyDestinationName:
		c = strings.Compare(strings.ToLower(a.DestinationName), strings.ToLower(b.DestinationName))
	case SortKeyLastSync:
		switch {
		case a.LatestJobCreatedAt == nil && b.LatestJobCreatedAt == nil:
			c = 0
		case a.LatestJobCreatedAt == nil:
			c = -1
		case b.LatestJobCreatedAt == nil:
			c = 1
		default:
			c = a.LatestJobCreatedAt.Compare(*b.LatestJobCreatedAt)
		}
	}

	if c != 0 {
		return c
	}

	return strings.Compare(a.Connection.Id.String(), b.Connection.Id.String())
}

func TestListWorkspaceConnections_ExhaustivePagination(t *testing.T) {
	f := newFixture(t)

	sources := []*Actor{f.source("alpha"), f.source("Alpha"), f.source("beta")}
	dests := []*Actor{f.destination("zeta"), f.destination("Zeta"), f.destination("eta")}
	names := []string{"orders", "Orders", "users", "events", "EVENTS", "billing", "audit", "Audit", "metrics", "zed", "inactive", "gone"}

	var conns []*Connection
	for i, name := range names {
		status := ConnectionStatusActive
		switch name {
		case "inactive":
			status = ConnectionStatusInactive
		case "gone":
			status = ConnectionStatusDeprecated
		}
		conns = append(conns, f.connection(name, sources[i%len(sources)], dests[(i/2)%len(dests)], status))
	}

	// Shared timestamps force id tie-breaks, and some connections never sync.
	jobStatuses := []JobStatus{JobStatusSucceeded, JobStatusFailed, JobStatusRunning, JobStatusCancelled}
	for i, c := range conns {
		if i%4 == 3 {
			continue
		}
		f.syncJob(c, JobStatusSucceeded, fixtureNow.Add(-time.Duration(i+10)*time.Hour))
		f.syncJob(c, jobStatuses[i%len(jobStatuses)], fixtureNow.Add(-time.Duration(i%3)*time.Hour))
	}

	filterSets := map[string]*Filters{
		"none":     nil,
		"healthy":  {Statuses: []ConnectionJobStatus{ConnectionJobStatusHealthy}},
		"failed":   {Statuses: []ConnectionJobStatus{ConnectionJobStatusFailed, ConnectionJobStatusRunning}},
		"inactive": {States: []ActorStatus{ActorStatusInactive}},
		"search":   {SearchTerm: util.ToPtr("e")},
		"source":   {SearchTerm: util.ToPtr("alpha"), States: []ActorStatus{ActorStatusActive}},
	}

	for _, sortKey := range []SortKey{SortKeyConnectionName, SortKeySourceName, SortKeyDestinationName, SortKeyLastSync} {
		for _, ascending := range []bool{true, false} {
			for filterName, filters := range filterSets {
				for _, pageSize := range []int{1, 2, 5, 100} {
					t.Run(fmt.Sprintf("%s/asc=%t/%s/page=%d", sortKey, ascending, filterName, pageSize), func(t *testing.T) {
						pages := f.listAll(f.query(), CursorPagination{
							Cursor:   NewCursor(sortKey, ascending, filters),
							PageSize: pageSize,
						})
						all := flatten(pages)

						for _, page := range pages {
							require.LessOrEqual(t, len(page), pageSize)
						}
						require.Empty(t, pages[len(pages)-1])

						count, err := f.db.CountWorkspaceConnections(f.ctx, f.query(), filters)
						require.NoError(t, err)
						require.Equal(t, count, len(all))

						seen := map[uuid.UUID]bool{}
						for _, r := range all {
							require.False(t, seen[r.Connection.Id], "connection %s returned twice", r.Connection.Name)
							seen[r.Connection.Id] = true
						}

						for i := 1; i < len(all); i++ {
							c := compareListingRows(all[i-1], all[i], sortKey)
							if ascending {
								require.Negative(t, c, "%s before %s", all[i-1].Connection.Name, all[i].Connection.Name)
							} else {
								require.Positive(t, c, "%s before %s", all[i-1].Connection.Name, all[i].Connection.Name)
							}
						}

						if sortKey == SortKeyLastSync && !ascending {
							seenNull := false
							for _, r := range all {
								if r.LatestJobCreatedAt == nil {
									seenNull = true
								} else {
									require.False(t, seenNull, "synced connection %s after a never-synced one", r.Connection.Name)
								}
							}
						}
					})
				}
			}
		}
	}
}

func TestListWorkspaceConnections_DefaultsAndValidation(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")
	for i := 0; i < 3; i++ {
		f.connection(fmt.Sprintf("conn%d", 3-i), src, dst, ConnectionStatusActive)
	}

	t.Run("nil cursor sorts by name ascending with default page size", func(t *testing.T) {
		page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), CursorPagination{})
		require.NoError(t, err)
		require.Equal(t, []string{"conn1", "conn2", "conn3"}, connectionNames(page.Connections))
		require.Equal(t, config.DefaultListPageSize, page.Next.PageSize)
		require.Equal(t, SortKeyConnectionName, page.Next.Cursor.SortKey)
		require.True(t, page.Next.Cursor.Ascending)
		require.Equal(t, "conn3", *page.Next.Cursor.ConnectionName)
	})

	t.Run("oversized page is capped", func(t *testing.T) {
		page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), CursorPagination{PageSize: 1_000_000})
		require.NoError(t, err)
		require.Equal(t, config.MaxListPageSize, page.Next.PageSize)
	})

	t.Run("negative page size", func(t *testing.T) {
		_, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), CursorPagination{PageSize: -1})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown sort key", func(t *testing.T) {
		id := uuid.New()
		_, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), CursorPagination{
			Cursor: &Cursor{SortKey: "CREATED_AT", CursorId: &id},
		})
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Contains(t, err.Error(), "CREATED_AT")
		require.Contains(t, err.Error(), id.String())
	})

	t.Run("unknown status bucket", func(t *testing.T) {
		_, err := f.db.CountWorkspaceConnections(f.ctx, f.query(), &Filters{Statuses: []ConnectionJobStatus{"BROKEN"}})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("cursor without a value for the sort key starts at the beginning", func(t *testing.T) {
		id := uuid.New()
		page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), CursorPagination{
			Cursor: &Cursor{SortKey: SortKeySourceName, Ascending: true, CursorId: &id},
		})
		require.NoError(t, err)
		require.Len(t, page.Connections, 3)
	})
}

func TestBuildCursorPagination(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")
	a := f.connection("a", src, dst, ConnectionStatusActive)
	b := f.connection("b", src, dst, ConnectionStatusActive)
	c := f.connection("c", src, dst, ConnectionStatusActive)
	f.syncJob(b, JobStatusSucceeded, fixtureNow.Add(-time.Hour))

	t.Run("nil anchor starts at first page", func(t *testing.T) {
		p, err := f.db.BuildCursorPagination(f.ctx, f.workspace.Id, nil, SortKeyConnectionName, nil, true, 10)
		require.NoError(t, err)
		require.Nil(t, p.Cursor.CursorId)

		page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), *p)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, connectionNames(page.Connections))
	})

	t.Run("anchor continues after the anchor row", func(t *testing.T) {
		p, err := f.db.BuildCursorPagination(f.ctx, f.workspace.Id, &a.Id, SortKeyConnectionName, nil, true, 10)
		require.NoError(t, err)
		require.Equal(t, "a", *p.Cursor.ConnectionName)

		page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), *p)
		require.NoError(t, err)
		require.Equal(t, []string{"b", "c"}, connectionNames(page.Connections))
	})

	t.Run("last sync anchor reads the current latest job", func(t *testing.T) {
		p, err := f.db.BuildCursorPagination(f.ctx, f.workspace.Id, &b.Id, SortKeyLastSync, nil, false, 10)
		require.NoError(t, err)
		require.Equal(t, fixtureNow.Add(-time.Hour), *p.Cursor.LastSync)
		require.Nil(t, p.Cursor.ConnectionName)

		page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, f.query(), *p)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{a.Id, c.Id}, []uuid.UUID{page.Connections[0].Connection.Id, page.Connections[1].Connection.Id})
	})

	t.Run("filters are copied", func(t *testing.T) {
		filters := &Filters{TagIds: []uuid.UUID{uuid.New()}}
		p, err := f.db.BuildCursorPagination(f.ctx, f.workspace.Id, &a.Id, SortKeyConnectionName, filters, true, 10)
		require.NoError(t, err)

		filters.TagIds[0] = uuid.Nil
		require.NotEqual(t, uuid.Nil, p.Cursor.Filters.TagIds[0])
	})

	t.Run("vanished anchor", func(t *testing.T) {
		missing := uuid.New()
		_, err := f.db.BuildCursorPagination(f.ctx, f.workspace.Id, &missing, SortKeyConnectionName, nil, true, 10)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("anchor from another workspace", func(t *testing.T) {
		other := f.newWorkspace(f.workspace.OrganizationId, "other")
		_, err := f.db.BuildCursorPagination(f.ctx, other.Id, &a.Id, SortKeyConnectionName, nil, true, 10)
		require.ErrorIs(t, err, ErrNotFound)
		require.Contains(t, err.Error(), other.Id.String())
	})

	t.Run("invalid sort key", func(t *testing.T) {
		_, err := f.db.BuildCursorPagination(f.ctx, f.workspace.Id, &a.Id, "NOPE", nil, true, 10)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Contains(t, err.Error(), a.Id.String())
	})
}

func TestEnumerateWorkspaceConnections(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")
	for i := 0; i < 5; i++ {
		f.connection(fmt.Sprintf("conn%d", i), src, dst, ConnectionStatusActive)
	}

	t.Run("all pages", func(t *testing.T) {
		var pages [][]string
		err := f.db.EnumerateWorkspaceConnections(f.ctx, f.query(), CursorPagination{PageSize: 2},
			func(result pagination.PageResult[ConnectionWithJobInfo]) (bool, error) {
				pages = append(pages, connectionNames(result.Results))
				return true, nil
			})
		require.NoError(t, err)
		require.Equal(t, [][]string{{"conn0", "conn1"}, {"conn2", "conn3"}, {"conn4"}}, pages)
	})

	t.Run("stop early", func(t *testing.T) {
		calls := 0
		err := f.db.EnumerateWorkspaceConnections(f.ctx, f.query(), CursorPagination{PageSize: 2},
			func(result pagination.PageResult[ConnectionWithJobInfo]) (bool, error) {
				calls++
				return false, nil
			})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("callback error", func(t *testing.T) {
		err := f.db.EnumerateWorkspaceConnections(f.ctx, f.query(), CursorPagination{PageSize: 2},
			func(result pagination.PageResult[ConnectionWithJobInfo]) (bool, error) {
				return true, ErrViolation
			})
		require.ErrorIs(t, err, ErrViolation)
	})
}

func TestConnectionListToken(t *testing.T) {
	f := newFixture(t)
	src := f.source("src")
	dst := f.destination("dst")
	f.connection("a", src, dst, ConnectionStatusActive)
	f.connection("b", src, dst, ConnectionStatusActive)

	query := f.query()
	query.IncludeDeleted = true
	filters := &Filters{SearchTerm: util.ToPtr("a"), Statuses: []ConnectionJobStatus{ConnectionJobStatusHealthy}}

	page, err := f.db.ListWorkspaceConnectionsCursorPaginated(f.ctx, query, CursorPagination{
		Cursor:   NewCursor(SortKeyLastSync, false, filters),
		PageSize: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, page.Next)

	token, err := f.db.EncodeConnectionListToken(f.ctx, query, *page.Next)
	require.NoError(t, err)
	require.NotContains(t, token, "LAST_SYNC")

	decoded, err := f.db.DecodeConnectionListToken(f.ctx, token)
	require.NoError(t, err)
	require.Equal(t, query, decoded.Query)
	require.Equal(t, *page.Next, decoded.Pagination)

	_, err = f.db.DecodeConnectionListToken(f.ctx, token[:len(token)-4]+"AAAA")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
