package services

import (
	"errors"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/apperr"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	fallbackFactor  = 5
	fallbackCap     = 500
)

// ApplicationPage is one page of the reviewer queue, newest first.
type ApplicationPage struct {
	Items      []entity.Application `json:"items"`
	NextCursor string               `json:"nextCursor"`
}

// List pages applications by status. The cursor is the last-seen application
// id from the previous page; an unknown cursor starts from the top.
//
// When the store reports the composite (status, created_at) index missing it
// falls back to over-fetching up to 5x the page size unfiltered, filtering by
// status in memory, and truncating. The fallback's nextCursor is computed
// from the filtered, truncated set and can skip or repeat boundary entries
// under concurrent writes; that trade of continuity for availability is
// intentional.
func (s *ApplicationService) List(status string, limit int, cursor string) (*ApplicationPage, error) {
	if status == "" {
		status = entity.StatusSubmitted
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var after *entity.Application
	if cursor != "" {
		found, err := s.Apps.FindByID(cursor)
		if err == nil {
			after = found
		}
		// An unknown cursor is ignored, same as an expired page handle.
	}

	apps, err := s.Apps.ListByStatus(status, limit, after)
	if errors.Is(err, apperr.ErrMissingIndex) {
		fetchLimit := limit * fallbackFactor
		if fetchLimit > fallbackCap {
			fetchLimit = fallbackCap
		}
		recent, err := s.Apps.ListRecent(fetchLimit, after)
		if err != nil {
			return nil, err
		}
		apps = filterByStatus(recent, status, limit)
	} else if err != nil {
		return nil, err
	}

	page := &ApplicationPage{Items: apps}
	if len(apps) > 0 {
		page.NextCursor = apps[len(apps)-1].ID
	}
	return page, nil
}

func filterByStatus(apps []entity.Application, status string, limit int) []entity.Application {
	out := make([]entity.Application, 0, limit)
	for _, app := range apps {
		if app.Status == status {
			out = append(out, app)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
