package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// listLimit returns the limit for a list query. It defaults to 50.
func listLimit(setFields []string, requested int) int {
	if slices.Contains(setFields, "Limit") {
		return requested
	}
	return 50
}

// page returns the part of s that starts at offset and contains at
// most limit elements. A negative limit returns everything after offset.
func page[T any](s []T, offset uint, limit int) []T {
	if int(offset) >= len(s) {
		return []T{}
	}
	s = s[offset:]

	if limit >= 0 && limit < len(s) {
		s = s[:limit]
	}

	return s
}
