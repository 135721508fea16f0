package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/database"
	"github.com/rmorlok/syncstore/internal/routes"
	"github.com/rmorlok/syncstore/internal/service"
	"github.com/rmorlok/syncstore/internal/util"
	"github.com/rmorlok/syncstore/internal/util/pagination"
	"github.com/spf13/cobra"
)

// connectionFlags are the listing scope and filters shared by list and count.
type connectionFlags struct {
	workspaceId              string
	search                   string
	sourceIds                []string
	destinationIds           []string
	sourceDefinitionIds      []string
	destinationDefinitionIds []string
	statuses                 []string
	states                   []string
	tagIds                   []string
	includeDeleted           bool
}

func (f *connectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.workspaceId, "workspace", "w", "", "Workspace to list connections for")
	cmd.Flags().StringVar(&f.search, "search", "", "Case-insensitive substring of the connection, source or destination name")
	cmd.Flags().StringSliceVar(&f.sourceIds, "source-id", nil, "Only connections reading from these sources")
	cmd.Flags().StringSliceVar(&f.destinationIds, "destination-id", nil, "Only connections writing to these destinations")
	cmd.Flags().StringSliceVar(&f.sourceDefinitionIds, "source-definition-id", nil, "Only connections whose source uses these definitions")
	cmd.Flags().StringSliceVar(&f.destinationDefinitionIds, "destination-definition-id", nil, "Only connections whose destination uses these definitions")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "Latest sync status buckets: healthy, failed, running")
	cmd.Flags().StringSliceVar(&f.states, "state", nil, "Connection states: active, inactive")
	cmd.Flags().StringSliceVar(&f.tagIds, "tag-id", nil, "Only connections carrying one of these tags")
	cmd.Flags().BoolVar(&f.includeDeleted, "include-deleted", false, "Include deprecated connections")
	_ = cmd.MarkFlagRequired("workspace")
}

func parseUuids(flag string, values []string, errs *multierror.Error) []uuid.UUID {
	var ids []uuid.UUID
	for _, v := range values {
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			errs.Errors = append(errs.Errors, errors.Errorf("invalid --%s '%s'", flag, v))
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

func (f *connectionFlags) toQuery() (database.StandardSyncQuery, *database.Filters, error) {
	errs := &multierror.Error{}

	workspaceId, err := uuid.Parse(f.workspaceId)
	if err != nil {
		errs.Errors = append(errs.Errors, errors.Errorf("invalid --workspace '%s'", f.workspaceId))
	}

	query := database.StandardSyncQuery{
		WorkspaceId:    workspaceId,
		SourceIds:      parseUuids("source-id", f.sourceIds, errs),
		DestinationIds: parseUuids("destination-id", f.destinationIds, errs),
		IncludeDeleted: f.includeDeleted,
	}

	filters := &database.Filters{
		SourceDefinitionIds:      parseUuids("source-definition-id", f.sourceDefinitionIds, errs),
		DestinationDefinitionIds: parseUuids("destination-definition-id", f.destinationDefinitionIds, errs),
		TagIds:                   parseUuids("tag-id", f.tagIds, errs),
		Statuses: util.Map(f.statuses, func(s string) database.ConnectionJobStatus {
			return database.ConnectionJobStatus(strings.ToUpper(s))
		}),
		States: util.Map(f.states, func(s string) database.ActorStatus {
			return database.ActorStatus(strings.ToUpper(s))
		}),
	}

	if f.search != "" {
		filters.SearchTerm = &f.search
	}

	if err := filters.Validate(); err != nil {
		errs.Errors = append(errs.Errors, err)
	}

	return query, filters, errs.ErrorOrNil()
}

func cmdConnectionsList() *cobra.Command {
	var (
		flags    connectionFlags
		order    string
		pageSize int
		maxRows  int
		asJson   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connections with their latest sync job",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, filters, err := flags.toQuery()
			if err != nil {
				return err
			}

			sortKey, direction, err := pagination.SplitOrderByParam[database.SortKey](order)
			if err != nil {
				return err
			}
			sortKey = database.SortKey(strings.ToUpper(string(sortKey)))

			ctx, cancel := signalContext()
			defer cancel()

			dm := service.NewDependencyManager("cli", cfg)
			defer dm.Close()
			db := dm.GetDatabase()

			p, err := db.BuildCursorPagination(ctx, query.WorkspaceId, nil, sortKey, filters, direction == pagination.OrderByAsc, pageSize)
			if err != nil {
				return err
			}

			var out Output[routes.ConnectionJson]
			if asJson {
				out = OutputMultiple[routes.ConnectionJson](os.Stdout)
			} else {
				out = &connectionTable{w: os.Stdout, now: time.Now()}
			}
			defer out.Done()

			emitted := 0
			return db.EnumerateWorkspaceConnections(ctx, query, *p, func(page pagination.PageResult[database.ConnectionWithJobInfo]) (bool, error) {
				for _, c := range page.Results {
					if maxRows > 0 && emitted >= maxRows {
						return false, nil
					}
					out.Emit(routes.ConnectionWithJobInfoToJson(c))
					emitted++
				}

				return maxRows <= 0 || emitted < maxRows, nil
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&order, "order", string(database.SortKeyConnectionName), "Order records by the specified field. Should be of the form \"field DESC|ASC\".")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Rows fetched per page")
	cmd.Flags().IntVar(&maxRows, "max", 0, "Stop after this many connections")
	cmd.Flags().BoolVar(&asJson, "json", false, "Emit JSON instead of a table")

	return cmd
}

func cmdConnectionsCount() *cobra.Command {
	var flags connectionFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count connections matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			query, filters, err := flags.toQuery()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			dm := service.NewDependencyManager("cli", cfg)
			defer dm.Close()

			n, err := dm.GetDatabase().CountWorkspaceConnections(ctx, query, filters)
			if err != nil {
				return err
			}

			fmt.Println(humanize.Comma(int64(n)))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func cmdConnectionsStatus() *cobra.Command {
	var (
		workspaceId string
		asJson      bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show connection counts per sync status bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(workspaceId)
			if err != nil {
				return errors.Errorf("invalid --workspace '%s'", workspaceId)
			}

			ctx, cancel := signalContext()
			defer cancel()

			dm := service.NewDependencyManager("cli", cfg)
			defer dm.Close()

			counts, err := dm.GetDatabase().GetConnectionStatusCounts(ctx, id)
			if err != nil {
				return err
			}

			if asJson {
				out := OutputSingle[database.ConnectionStatusCounts](os.Stdout)
				out.Emit(*counts)
				out.Done()
				return nil
			}

			printStatusCounts(os.Stdout, counts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceId, "workspace", "w", "", "Workspace to summarize")
	cmd.Flags().BoolVar(&asJson, "json", false, "Emit JSON instead of a table")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}

func cmdConnections() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "Inspect connections",
	}

	cmd.AddCommand(cmdConnectionsList())
	cmd.AddCommand(cmdConnectionsCount())
	cmd.AddCommand(cmdConnectionsStatus())

	return cmd
}
