package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/util/pagination"
)

// ConnectionListToken is everything needed to resume a connection listing, as handed to API clients.
type ConnectionListToken struct {
	Query      StandardSyncQuery `json:"query"`
	Pagination CursorPagination  `json:"pagination"`
}

// EncodeConnectionListToken seals the listing position so that clients can pass it back but not alter it.
func (s *service) EncodeConnectionListToken(ctx context.Context, query StandardSyncQuery, p CursorPagination) (string, error) {
	token, err := pagination.MakeCursor(ctx, s.secretKey, ConnectionListToken{
		Query:      query,
		Pagination: p,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode connection list token")
	}

	return token, nil
}

// DecodeConnectionListToken opens a token produced by EncodeConnectionListToken. Tokens that fail to decrypt or
// parse are invalid arguments.
func (s *service) DecodeConnectionListToken(ctx context.Context, token string) (*ConnectionListToken, error) {
	parsed, err := pagination.ParseCursor[ConnectionListToken](ctx, s.secretKey, token)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "invalid connection list token: %s", err.Error())
	}

	if parsed.Pagination.Cursor != nil && !IsValidSortKey(parsed.Pagination.Cursor.SortKey) {
		return nil, errors.Wrapf(ErrInvalidArgument, "invalid sort key '%s' in connection list token", parsed.Pagination.Cursor.SortKey)
	}

	return parsed, nil
}
