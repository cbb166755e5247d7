package show

import (
	"context"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
)

type Repository interface {
	ListShows(ctx context.Context, f Filter) ([]*Show, error)
	CountShows(ctx context.Context, f Filter) (int, error)

	// CreateShow resolves the artist and venue, copies their snapshot fields
	// into s and inserts it, all in one transaction.
	CreateShow(ctx context.Context, s *Show) error
}

// predicate is one WHERE condition of a show listing.
type predicate struct {
	column   string
	operator string
	value    any
}

// predicates translates f into backend-neutral conditions. Time values are
// passed as [time.Time]; each backend converts them to its storage format.
func (f Filter) predicates() []predicate {
	var predicates []predicate

	switch f.Owner.Side {
	case VenueSide:
		predicates = append(predicates, predicate{schema.Shows.VenueID, "=", f.Owner.ID})
	case ArtistSide:
		predicates = append(predicates, predicate{schema.Shows.ArtistID, "=", f.Owner.ID})
	}

	switch f.Timeframe {
	case Past:
		predicates = append(predicates, predicate{schema.Shows.StartTime, "<", f.Now})
	case Upcoming:
		predicates = append(predicates, predicate{schema.Shows.StartTime, ">", f.Now})
	case Current:
		predicates = append(predicates, predicate{schema.Shows.StartTime, "=", f.Now})
	}

	return predicates
}

// whereClause renders predicates with the given placeholder style.
func whereClause(predicates []predicate, placeholder func(position int) string, convert func(time.Time) any) (string, []any) {
	if len(predicates) == 0 {
		return "", nil
	}

	clause := " WHERE "
	args := make([]any, 0, len(predicates))

	for index, p := range predicates {
		if index > 0 {
			clause += " AND "
		}
		clause += p.column + " " + p.operator + " " + placeholder(index+1)

		if t, ok := p.value.(time.Time); ok {
			args = append(args, convert(t))
			continue
		}
		args = append(args, p.value)
	}

	return clause, args
}
