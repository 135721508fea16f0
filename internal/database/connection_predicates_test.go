package database

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/test_utils"
	"github.com/rmorlok/syncstore/internal/util"
	"github.com/stretchr/testify/require"
)

func newSqlOnlyService() *service {
	return newService(&config.DatabaseSqlite{Path: "unused.sqlite3"}, nil, config.NewKeyDataRandomBytes(), test_utils.NewTestLogger())
}

func TestResolveConnectionOrder(t *testing.T) {
	tests := []struct {
		key       SortKey
		ascending bool
		expected  []string
	}{
		{SortKeyConnectionName, true, []string{"LOWER(c.name) ASC", "c.id ASC"}},
		{SortKeyConnectionName, false, []string{"LOWER(c.name) DESC", "c.id DESC"}},
		{SortKeySourceName, true, []string{"LOWER(src.name) ASC", "c.id ASC"}},
		{SortKeyDestinationName, false, []string{"LOWER(dst.name) DESC", "c.id DESC"}},
		{SortKeyLastSync, true, []string{"lj.created_at ASC NULLS FIRST", "c.id ASC"}},
		{SortKeyLastSync, false, []string{"lj.created_at DESC NULLS LAST", "c.id DESC"}},
	}

	for _, test := range tests {
		fields, err := ResolveConnectionOrder(test.key, test.ascending)
		require.NoError(t, err)
		require.Equal(t, test.expected, orderByClauses(fields))
	}

	_, err := ResolveConnectionOrder("NAME", true)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, err.Error(), "NAME")
}

func TestBuildConnectionFilterConditions(t *testing.T) {
	workspaceId := uuid.New()

	t.Run("structural only", func(t *testing.T) {
		sql, args, err := buildConnectionFilterConditions(StandardSyncQuery{WorkspaceId: workspaceId}, nil).ToSql()
		require.NoError(t, err)
		require.Equal(t, "(src.workspace_id = ? AND c.status <> ?)", sql)
		require.Equal(t, []interface{}{workspaceId.String(), ConnectionStatusDeprecated}, normalizeArgs(args))
	})

	t.Run("include deleted drops the status clause", func(t *testing.T) {
		sql, _, err := buildConnectionFilterConditions(StandardSyncQuery{WorkspaceId: workspaceId, IncludeDeleted: true}, &Filters{}).ToSql()
		require.NoError(t, err)
		require.Equal(t, "(src.workspace_id = ?)", sql)
	})

	t.Run("healthy bucket", func(t *testing.T) {
		sql, _, err := buildConnectionFilterConditions(
			StandardSyncQuery{WorkspaceId: workspaceId, IncludeDeleted: true},
			&Filters{Statuses: []ConnectionJobStatus{ConnectionJobStatusHealthy}},
		).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "(c.status = ? AND (lj.status IS NULL OR lj.status IN (?,?)))")
	})

	t.Run("search term is escaped and folded in sql", func(t *testing.T) {
		sql, args, err := buildConnectionFilterConditions(
			StandardSyncQuery{WorkspaceId: workspaceId, IncludeDeleted: true},
			&Filters{SearchTerm: util.ToPtr(" 50%_Off\\ ")},
		).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, `(LOWER(c.name) LIKE LOWER(CAST(? AS TEXT)) ESCAPE '\' OR `+
			`LOWER(src.name) LIKE LOWER(CAST(? AS TEXT)) ESCAPE '\' OR `+
			`LOWER(dst.name) LIKE LOWER(CAST(? AS TEXT)) ESCAPE '\')`)
		require.Equal(t, []interface{}{
			workspaceId.String(),
			`%50\%\_Off\\%`,
			`%50\%\_Off\\%`,
			`%50\%\_Off\\%`,
		}, normalizeArgs(args))
	})

	t.Run("tags use exists", func(t *testing.T) {
		tags := []uuid.UUID{uuid.New(), uuid.New()}
		sql, args, err := buildConnectionFilterConditions(
			StandardSyncQuery{WorkspaceId: workspaceId, IncludeDeleted: true},
			&Filters{TagIds: tags},
		).ToSql()
		require.NoError(t, err)
		require.Contains(t, sql, "EXISTS (SELECT 1 FROM connection_tags ct WHERE ct.connection_id = c.id AND ct.tag_id IN (?,?))")
		require.Equal(t, []interface{}{workspaceId.String(), tags[0].String(), tags[1].String()}, normalizeArgs(args))
	})
}

// normalizeArgs renders uuids as strings so args compare the same whichever path bound them.
func normalizeArgs(args []interface{}) []interface{} {
	result := make([]interface{}, 0, len(args))
	for _, a := range args {
		if u, ok := a.(uuid.UUID); ok {
			result = append(result, u.String())
		} else {
			result = append(result, a)
		}
	}
	return result
}

func TestBuildCursorCondition(t *testing.T) {
	id := uuid.New()
	synced := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		cursor *Cursor
		sql    string
		args   []interface{}
	}{
		{
			name:   "nil cursor",
			cursor: nil,
		},
		{
			name:   "fresh cursor",
			cursor: NewCursor(SortKeyConnectionName, true, nil),
		},
		{
			name:   "name without value",
			cursor: &Cursor{SortKey: SortKeyDestinationName, CursorId: &id},
		},
		{
			name:   "connection name ascending",
			cursor: &Cursor{SortKey: SortKeyConnectionName, Ascending: true, ConnectionName: util.ToPtr("Orders"), CursorId: &id},
			sql:    "(LOWER(c.name) > LOWER(CAST(? AS TEXT)) OR (LOWER(c.name) = LOWER(CAST(? AS TEXT)) AND c.id > ?))",
			args:   []interface{}{"Orders", "Orders", id.String()},
		},
		{
			name:   "source name descending",
			cursor: &Cursor{SortKey: SortKeySourceName, SourceName: util.ToPtr("pg"), CursorId: &id},
			sql:    "(LOWER(src.name) < LOWER(CAST(? AS TEXT)) OR (LOWER(src.name) = LOWER(CAST(? AS TEXT)) AND c.id < ?))",
			args:   []interface{}{"pg", "pg", id.String()},
		},
		{
			name:   "last sync descending from synced anchor",
			cursor: &Cursor{SortKey: SortKeyLastSync, LastSync: &synced, CursorId: &id},
			sql:    "(lj.created_at < ? OR (lj.created_at = ? AND c.id < ?) OR lj.created_at IS NULL)",
			args:   []interface{}{synced, synced, id.String()},
		},
		{
			name:   "last sync descending from never synced anchor",
			cursor: &Cursor{SortKey: SortKeyLastSync, CursorId: &id},
			sql:    "(lj.created_at IS NULL AND c.id < ?)",
			args:   []interface{}{id.String()},
		},
		{
			name:   "last sync ascending from synced anchor",
			cursor: &Cursor{SortKey: SortKeyLastSync, Ascending: true, LastSync: &synced, CursorId: &id},
			sql:    "(lj.created_at > ? OR (lj.created_at = ? AND c.id > ?))",
			args:   []interface{}{synced, synced, id.String()},
		},
		{
			name:   "last sync ascending from never synced anchor",
			cursor: &Cursor{SortKey: SortKeyLastSync, Ascending: true, CursorId: &id},
			sql:    "((lj.created_at IS NULL AND c.id > ?) OR lj.created_at IS NOT NULL)",
			args:   []interface{}{id.String()},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cond, err := buildCursorCondition(test.cursor)
			require.NoError(t, err)

			if test.sql == "" {
				require.Nil(t, cond)
				return
			}

			sql, args, err := cond.ToSql()
			require.NoError(t, err)
			require.Equal(t, test.sql, sql)
			require.Equal(t, test.args, normalizeArgs(args))
		})
	}

	t.Run("unknown sort key", func(t *testing.T) {
		_, err := buildCursorCondition(&Cursor{SortKey: "BOGUS", CursorId: &id})
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Contains(t, err.Error(), id.String())
	})
}

// listingBody strips the select list, and for listings the ORDER BY and LIMIT, leaving FROM ... WHERE ....
func listingBody(t *testing.T, b sq.SelectBuilder, ordered bool) (string, []interface{}) {
	t.Helper()

	sql, args, err := b.ToSql()
	require.NoError(t, err)

	from := strings.Index(sql, " FROM ")
	require.GreaterOrEqual(t, from, 0)
	body := sql[from:]

	if ordered {
		orderBy := strings.LastIndex(body, " ORDER BY ")
		require.GreaterOrEqual(t, orderBy, 0)
		body = body[:orderBy]
	}

	return body, args
}

func TestConnectionListAndCountShareFilter(t *testing.T) {
	s := newSqlOnlyService()
	query := StandardSyncQuery{
		WorkspaceId:    uuid.New(),
		SourceIds:      []uuid.UUID{uuid.New(), uuid.New()},
		DestinationIds: []uuid.UUID{uuid.New()},
	}

	filterSets := map[string]*Filters{
		"nil":   nil,
		"empty": {},
		"everything": {
			SearchTerm:               util.ToPtr("orders"),
			SourceDefinitionIds:      []uuid.UUID{uuid.New()},
			DestinationDefinitionIds: []uuid.UUID{uuid.New(), uuid.New()},
			Statuses:                 []ConnectionJobStatus{ConnectionJobStatusHealthy, ConnectionJobStatusFailed, ConnectionJobStatusRunning},
			States:                   []ActorStatus{ActorStatusActive, ActorStatusInactive},
			TagIds:                   []uuid.UUID{uuid.New()},
		},
		"statuses": {Statuses: []ConnectionJobStatus{ConnectionJobStatusFailed}},
	}

	for name, filters := range filterSets {
		for _, sortKey := range []SortKey{SortKeyConnectionName, SortKeySourceName, SortKeyDestinationName, SortKeyLastSync} {
			t.Run(name+"/"+string(sortKey), func(t *testing.T) {
				list, err := s.connectionListQuery(query, NewCursor(sortKey, false, filters), 25)
				require.NoError(t, err)
				listBody, listArgs := listingBody(t, list, true)
				countBody, countArgs := listingBody(t, s.connectionCountQuery(query, filters), false)

				if diff := cmp.Diff(countBody, listBody); diff != "" {
					t.Errorf("list and count predicates differ (-count +list):\n%s", diff)
				}
				if diff := cmp.Diff(normalizeArgs(countArgs), normalizeArgs(listArgs)); diff != "" {
					t.Errorf("list and count args differ (-count +list):\n%s", diff)
				}
			})
		}
	}

	t.Run("boundary is appended after the shared filter", func(t *testing.T) {
		id := uuid.New()
		filters := filterSets["everything"]
		cursor := &Cursor{SortKey: SortKeyConnectionName, Ascending: true, ConnectionName: util.ToPtr("x"), CursorId: &id, Filters: filters}

		list, err := s.connectionListQuery(query, cursor, 25)
		require.NoError(t, err)
		listBody, listArgs := listingBody(t, list, true)
		countBody, countArgs := listingBody(t, s.connectionCountQuery(query, filters), false)

		require.True(t, strings.HasPrefix(listBody, countBody+" AND "), "list body %q does not extend count body %q", listBody, countBody)
		require.Equal(t, normalizeArgs(countArgs), normalizeArgs(listArgs[:len(countArgs)]))
		require.Equal(t, []interface{}{"x", "x", id.String()}, normalizeArgs(listArgs[len(countArgs):]))
	})

	t.Run("limit", func(t *testing.T) {
		list, err := s.connectionListQuery(query, NewCursor(SortKeyConnectionName, true, nil), 25)
		require.NoError(t, err)
		sql, _, err := list.ToSql()
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(sql, "ORDER BY LOWER(c.name) ASC, c.id ASC LIMIT 25"), sql)
	})
}

func TestCursor(t *testing.T) {
	synced := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	row := &ConnectionWithJobInfo{
		Connection:         Connection{Id: uuid.New(), Name: "conn"},
		SourceName:         "src",
		DestinationName:    "dst",
		LatestJobCreatedAt: &synced,
	}

	t.Run("only the active sort field is set", func(t *testing.T) {
		c := NextCursor(row, SortKeySourceName, true, nil)
		require.Equal(t, row.Connection.Id, *c.CursorId)
		require.Equal(t, "src", *c.SourceName)
		require.Nil(t, c.ConnectionName)
		require.Nil(t, c.DestinationName)
		require.Nil(t, c.LastSync)
		require.Nil(t, c.LastSyncEpochSeconds())
	})

	t.Run("last sync", func(t *testing.T) {
		c := NextCursor(row, SortKeyLastSync, false, nil)
		require.Equal(t, synced, *c.LastSync)
		require.Equal(t, synced.Unix(), *c.LastSyncEpochSeconds())
		require.Nil(t, c.SourceName)
	})

	t.Run("cursors do not share filters", func(t *testing.T) {
		filters := &Filters{SearchTerm: util.ToPtr("a"), States: []ActorStatus{ActorStatusActive}}
		c1 := NewCursor(SortKeyConnectionName, true, filters)
		c2 := NextCursor(row, SortKeyConnectionName, true, c1.Filters)

		*filters.SearchTerm = "b"
		filters.States[0] = ActorStatusInactive
		c1.Filters.States[0] = ActorStatusInactive

		require.Equal(t, "a", *c1.Filters.SearchTerm)
		require.Equal(t, "a", *c2.Filters.SearchTerm)
		require.Equal(t, ActorStatusActive, c2.Filters.States[0])
	})

	t.Run("nil filters stay nil", func(t *testing.T) {
		require.Nil(t, NewCursor(SortKeyLastSync, true, nil).Filters)
	})
}

func TestNormalizePageSize(t *testing.T) {
	n, err := normalizePageSize(0)
	require.NoError(t, err)
	require.Equal(t, config.DefaultListPageSize, n)

	n, err = normalizePageSize(7)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	n, err = normalizePageSize(config.MaxListPageSize + 1)
	require.NoError(t, err)
	require.Equal(t, config.MaxListPageSize, n)

	_, err = normalizePageSize(-5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
