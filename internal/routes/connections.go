package routes

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/api_common"
	"github.com/rmorlok/syncstore/internal/aplog"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/database"
	"github.com/rmorlok/syncstore/internal/util"
	"github.com/rmorlok/syncstore/internal/util/pagination"
)

type ConnectionsRoutes struct {
	cfg    config.C
	db     database.DB
	logger *slog.Logger
}

type ActorSummaryJson struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DefinitionId uuid.UUID `json:"definition_id"`
}

type TagJson struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

type ConnectionJson struct {
	Id                     uuid.UUID                 `json:"id"`
	Name                   string                    `json:"name"`
	WorkspaceId            uuid.UUID                 `json:"workspace_id"`
	Status                 database.ConnectionStatus `json:"status"`
	Source                 ActorSummaryJson          `json:"source"`
	Destination            ActorSummaryJson          `json:"destination"`
	LatestSyncJobStatus    *database.JobStatus       `json:"latest_sync_job_status,omitempty"`
	LatestSyncJobCreatedAt *time.Time                `json:"latest_sync_job_created_at,omitempty"`
	Tags                   []TagJson                 `json:"tags"`
	CreatedAt              time.Time                 `json:"created_at"`
	UpdatedAt              time.Time                 `json:"updated_at"`
}

func ConnectionWithJobInfoToJson(c database.ConnectionWithJobInfo) ConnectionJson {
	return ConnectionJson{
		Id:          c.Connection.Id,
		Name:        c.Connection.Name,
		WorkspaceId: c.WorkspaceId,
		Status:      c.Connection.Status,
		Source: ActorSummaryJson{
			Id:           c.Connection.SourceId,
			Name:         c.SourceName,
			DefinitionId: c.SourceDefinitionId,
		},
		Destination: ActorSummaryJson{
			Id:           c.Connection.DestinationId,
			Name:         c.DestinationName,
			DefinitionId: c.DestinationDefinitionId,
		},
		LatestSyncJobStatus:    c.LatestJobStatus,
		LatestSyncJobCreatedAt: c.LatestJobCreatedAt,
		Tags: util.Map(c.Tags, func(t database.Tag) TagJson {
			return TagJson{Id: t.Id, Name: t.Name, Color: t.Color}
		}),
		CreatedAt: c.Connection.CreatedAt,
		UpdatedAt: c.Connection.UpdatedAt,
	}
}

// ConnectionFilterQuery holds the query parameters shared by listing and counting connections. Id lists may be
// repeated or comma separated.
type ConnectionFilterQuery struct {
	Search                   *string  `form:"search"`
	SourceIds                []string `form:"source_id"`
	DestinationIds           []string `form:"destination_id"`
	SourceDefinitionIds      []string `form:"source_definition_id"`
	DestinationDefinitionIds []string `form:"destination_definition_id"`
	Statuses                 []string `form:"status"`
	States                   []string `form:"state"`
	TagIds                   []string `form:"tag_id"`
	IncludeDeleted           bool     `form:"include_deleted"`
}

func splitParams(values []string) []string {
	var result []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func parseIds(field string, values []string, errs *multierror.Error) []uuid.UUID {
	var ids []uuid.UUID
	for _, v := range splitParams(values) {
		id, err := uuid.Parse(v)
		if err != nil {
			errs.Errors = append(errs.Errors, errors.Errorf("invalid %s '%s'", field, v))
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// toQuery converts the parameters into the structural query and filters of a listing.
func (q *ConnectionFilterQuery) toQuery(workspaceId uuid.UUID) (database.StandardSyncQuery, *database.Filters, error) {
	errs := &multierror.Error{}

	query := database.StandardSyncQuery{
		WorkspaceId:    workspaceId,
		SourceIds:      parseIds("source_id", q.SourceIds, errs),
		DestinationIds: parseIds("destination_id", q.DestinationIds, errs),
		IncludeDeleted: q.IncludeDeleted,
	}

	filters := &database.Filters{
		SearchTerm:               q.Search,
		SourceDefinitionIds:      parseIds("source_definition_id", q.SourceDefinitionIds, errs),
		DestinationDefinitionIds: parseIds("destination_definition_id", q.DestinationDefinitionIds, errs),
		TagIds:                   parseIds("tag_id", q.TagIds, errs),
	}

	for _, s := range splitParams(q.Statuses) {
		status := database.ConnectionJobStatus(strings.ToUpper(s))
		if !database.IsValidConnectionJobStatus(status) {
			errs = multierror.Append(errs, errors.Errorf("invalid status '%s'", s))
			continue
		}
		filters.Statuses = append(filters.Statuses, status)
	}

	for _, s := range splitParams(q.States) {
		state := database.ActorStatus(strings.ToUpper(s))
		if !database.IsValidActorStatus(state) {
			errs = multierror.Append(errs, errors.Errorf("invalid state '%s'", s))
			continue
		}
		filters.States = append(filters.States, state)
	}

	return query, filters, errs.ErrorOrNil()
}

type ListConnectionsRequestQuery struct {
	ConnectionFilterQuery
	Cursor       *string `form:"cursor"`
	After        *string `form:"after"`
	LimitVal     *int    `form:"limit"`
	OrderByVal   *string `form:"order_by"`
	IncludeTotal bool    `form:"include_total"`
}

type ListConnectionsResponseJson struct {
	Items  []ConnectionJson `json:"items"`
	Cursor string           `json:"cursor,omitempty"`
	Total  *int             `json:"total,omitempty"`
}

type CountConnectionsResponseJson struct {
	Count int `json:"count"`
}

// dbErrorBuilder maps store sentinels onto HTTP statuses. notFoundMsg is the response message for missing rows.
func dbErrorBuilder(err error, notFoundMsg string) api_common.HttpStatusErrorBuilder {
	b := api_common.NewHttpStatusErrorBuilder().WithInternalErr(err)

	switch {
	case errors.Is(err, database.ErrNotFound):
		b.WithStatusNotFound().WithResponseMsg(notFoundMsg)
	case errors.Is(err, database.ErrInvalidArgument):
		b.WithStatusBadRequest().WithResponseMsg(err.Error())
	}

	return b
}

func (r *ConnectionsRoutes) badRequest(gctx *gin.Context, err error) {
	api_common.NewHttpStatusErrorBuilder().
		WithStatusBadRequest().
		WithInternalErr(err).
		WithResponseMsg(err.Error()).
		BuildStatusError().
		WriteGinResponse(r.cfg, gctx)
}

func workspaceIdParam(gctx *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(gctx.Param("workspace_id"))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.Errorf("invalid workspace id '%s'", gctx.Param("workspace_id"))
	}
	return id, nil
}

// pagination resolves the listing position for a fresh request: sort order, page size and an optional anchor.
func (r *ConnectionsRoutes) pagination(gctx *gin.Context, workspaceId uuid.UUID, req *ListConnectionsRequestQuery, filters *database.Filters) (*database.CursorPagination, error) {
	sortKey := database.SortKeyConnectionName
	ascending := true
	if req.OrderByVal != nil {
		field, order, err := pagination.SplitOrderByParam[database.SortKey](*req.OrderByVal)
		if err != nil {
			return nil, errors.Wrap(database.ErrInvalidArgument, err.Error())
		}

		field = database.SortKey(strings.ToUpper(string(field)))
		if !database.IsValidSortKey(field) {
			return nil, errors.Wrapf(database.ErrInvalidArgument, "invalid sort field '%s'", field)
		}

		sortKey = field
		ascending = order.IsAsc()
	}

	pageSize := r.cfg.GetRoot().Api.GetDefaultPageSize()
	if req.LimitVal != nil {
		pageSize = *req.LimitVal
	}
	if pageSize < 0 {
		return nil, errors.Wrapf(database.ErrInvalidArgument, "invalid limit %d", pageSize)
	}

	var anchorId *uuid.UUID
	if req.After != nil {
		id, err := uuid.Parse(*req.After)
		if err != nil {
			return nil, errors.Wrapf(database.ErrInvalidArgument, "invalid after id '%s'", *req.After)
		}
		anchorId = &id
	}

	return r.db.BuildCursorPagination(gctx.Request.Context(), workspaceId, anchorId, sortKey, filters, ascending, pageSize)
}

func (r *ConnectionsRoutes) list(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	workspaceId, err := workspaceIdParam(gctx)
	if err != nil {
		r.badRequest(gctx, err)
		return
	}

	var req ListConnectionsRequestQuery
	if err := gctx.ShouldBindQuery(&req); err != nil {
		r.badRequest(gctx, err)
		return
	}

	var query database.StandardSyncQuery
	var p *database.CursorPagination

	if req.Cursor != nil {
		token, err := r.db.DecodeConnectionListToken(ctx, *req.Cursor)
		if err != nil {
			dbErrorBuilder(err, "").
				WithResponseMsg("invalid cursor").
				BuildStatusError().
				WriteGinResponse(r.cfg, gctx)
			return
		}

		if token.Query.WorkspaceId != workspaceId {
			r.badRequest(gctx, errors.New("cursor does not belong to this workspace"))
			return
		}

		query = token.Query
		p = &token.Pagination
	} else {
		var filters *database.Filters
		query, filters, err = req.toQuery(workspaceId)
		if err != nil {
			r.badRequest(gctx, err)
			return
		}

		p, err = r.pagination(gctx, workspaceId, &req, filters)
		if err != nil {
			dbErrorBuilder(err, "anchor connection not found; restart the listing").
				BuildStatusError().
				WriteGinResponse(r.cfg, gctx)
			return
		}
	}

	logger := aplog.NewBuilder(r.logger).WithCtx(ctx).WithWorkspaceId(workspaceId).Build()

	page, err := r.db.ListWorkspaceConnectionsCursorPaginated(ctx, query, *p)
	if err != nil {
		logger.Error("failed to list connections", "error", err)
		dbErrorBuilder(err, "").
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	resp := ListConnectionsResponseJson{
		Items: util.Map(page.Connections, ConnectionWithJobInfoToJson),
	}

	if page.Next != nil {
		resp.Cursor, err = r.db.EncodeConnectionListToken(ctx, query, *page.Next)
		if err != nil {
			logger.Error("failed to encode connection list cursor", "error", err)
			api_common.AsHttpStatusError(err).WriteGinResponse(r.cfg, gctx)
			return
		}
	}

	if req.IncludeTotal {
		var filters *database.Filters
		if p.Cursor != nil {
			filters = p.Cursor.Filters
		}

		total, err := r.db.CountWorkspaceConnections(ctx, query, filters)
		if err != nil {
			logger.Error("failed to count connections", "error", err)
			dbErrorBuilder(err, "").
				BuildStatusError().
				WriteGinResponse(r.cfg, gctx)
			return
		}
		resp.Total = &total
	}

	gctx.PureJSON(http.StatusOK, resp)
}

func (r *ConnectionsRoutes) count(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	workspaceId, err := workspaceIdParam(gctx)
	if err != nil {
		r.badRequest(gctx, err)
		return
	}

	var req ConnectionFilterQuery
	if err := gctx.ShouldBindQuery(&req); err != nil {
		r.badRequest(gctx, err)
		return
	}

	query, filters, err := req.toQuery(workspaceId)
	if err != nil {
		r.badRequest(gctx, err)
		return
	}

	count, err := r.db.CountWorkspaceConnections(ctx, query, filters)
	if err != nil {
		dbErrorBuilder(err, "").
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	gctx.PureJSON(http.StatusOK, CountConnectionsResponseJson{Count: count})
}

func (r *ConnectionsRoutes) statusCounts(gctx *gin.Context) {
	workspaceId, err := workspaceIdParam(gctx)
	if err != nil {
		r.badRequest(gctx, err)
		return
	}

	counts, err := r.db.GetConnectionStatusCounts(gctx.Request.Context(), workspaceId)
	if err != nil {
		dbErrorBuilder(err, "").
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	gctx.PureJSON(http.StatusOK, counts)
}

func (r *ConnectionsRoutes) get(gctx *gin.Context) {
	id, err := uuid.Parse(gctx.Param("id"))
	if err != nil || id == uuid.Nil {
		api_common.NewHttpStatusErrorBuilder().
			WithStatusBadRequest().
			WithResponseMsg("failed to parse id as UUID").
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	c, err := r.db.GetConnectionWithJobInfo(gctx.Request.Context(), id)
	if err != nil {
		dbErrorBuilder(err, "connection not found").
			BuildStatusError().
			WriteGinResponse(r.cfg, gctx)
		return
	}

	gctx.PureJSON(http.StatusOK, ConnectionWithJobInfoToJson(*c))
}

func (r *ConnectionsRoutes) Register(g gin.IRouter) {
	g.GET("/workspaces/:workspace_id/connections", r.list)
	g.GET("/workspaces/:workspace_id/connections/_count", r.count)
	g.GET("/workspaces/:workspace_id/connections/_status_counts", r.statusCounts)
	g.GET("/connections/:id", r.get)
}

func NewConnectionsRoutes(cfg config.C, db database.DB, logger *slog.Logger) *ConnectionsRoutes {
	return &ConnectionsRoutes{
		cfg:    cfg,
		db:     db,
		logger: aplog.NewBuilder(logger).WithComponent("connections-routes").Build(),
	}
}
