package insights

import (
	"fmt"

	"github.com/socialpulse/insights-api/internal/models"
)

// FilterRecords selects the records whose publish timestamp falls
// inside the window, ends included. When category is non-empty the
// set is additionally narrowed: records linked to a post resolve
// their category through postTypes (post type is owned by the post
// entity), manual records match on their own category field.
func FilterRecords(records []*models.MetricRecord, w Window, category string, postTypes map[int64]string) ([]*models.MetricRecord, error) {
	if category != "" && !validCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCategory, category)
	}

	var out []*models.MetricRecord
	for _, r := range records {
		if !w.Contains(r.PublishedAt) {
			continue
		}
		if category != "" && resolveCategory(r, postTypes) != category {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// resolveCategory returns the record's effective post type, or ""
// when neither the linked post nor the record itself carries one.
func resolveCategory(r *models.MetricRecord, postTypes map[int64]string) string {
	if r.PostID != nil {
		return postTypes[*r.PostID]
	}
	if r.Category != nil {
		return *r.Category
	}
	return ""
}

func validCategory(category string) bool {
	switch category {
	case models.CategoryFeed, models.CategoryReel, models.CategoryStory:
		return true
	}
	return false
}
