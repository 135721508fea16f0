package pagination

import (
	"strings"

	"github.com/pkg/errors"
)

type OrderBy string

const (
	OrderByAsc  = OrderBy("ASC")
	OrderByDesc = OrderBy("DESC")
)

// OrderByFromAscending maps a boolean direction onto an OrderBy.
func OrderByFromAscending(ascending bool) OrderBy {
	if ascending {
		return OrderByAsc
	}

	return OrderByDesc
}

func (o *OrderBy) String() string {
	if o == nil {
		return "ASC"
	}

	if !o.IsAsc() && !o.IsDesc() {
		return "ASC"
	}

	return string(*o)
}

func (o *OrderBy) IsDesc() bool {
	if o == nil {
		return false
	}

	return *o == OrderByDesc
}

func (o *OrderBy) IsAsc() bool {
	if o == nil {
		// Assume asc unless specified.
		return true
	}

	return *o == OrderByAsc
}

// SplitOrderByParam takes a field plus direction as a single query param value, e.g. "last_sync DESC", and
// returns the two parts. If the direction is omitted, ASC is assumed. An empty param, or a direction other than
// ASC/DESC, is an error.
func SplitOrderByParam[T ~string](p string) (field T, orderBy OrderBy, err error) {
	p = strings.TrimSpace(p)
	if len(p) == 0 {
		return "", OrderByAsc, errors.New("invalid order by field")
	}

	parts := strings.Fields(p)
	switch len(parts) {
	case 1:
		return T(parts[0]), OrderByAsc, nil
	case 2:
		orderBy = OrderBy(strings.ToUpper(parts[1]))
		if orderBy != OrderByAsc && orderBy != OrderByDesc {
			return "", OrderByAsc, errors.New("invalid order by")
		}

		return T(parts[0]), orderBy, nil
	default:
		return "", OrderByAsc, errors.New("invalid order by field")
	}
}
