package application

import (
	"fmt"

	"github.com/bnema/memory-garden/internal/domain"
)

type BuildCommand struct {
	UserID  domain.UserID
	GroupBy domain.GroupBy
}

func (c BuildCommand) Validate() error {
	if c.UserID <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidUserID, c.UserID)
	}
	if !c.GroupBy.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedGroupBy, c.GroupBy)
	}

	return nil
}

type SearchCommand struct {
	Query domain.SearchQuery
}

func (c SearchCommand) Validate() error {
	if c.Query.UserID <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidUserID, c.Query.UserID)
	}
	if c.Query.DateFrom != "" && c.Query.DateTo != "" && c.Query.DateFrom > c.Query.DateTo {
		return fmt.Errorf("date range is inverted: %s > %s", c.Query.DateFrom, c.Query.DateTo)
	}

	return nil
}
