// Package uuid wraps github.com/google/uuid so that IDs can be bound from
// URIs and query strings by gin.
package uuid

import (
	"fmt"
	"strings"

	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam parses a UUID from a URI or query parameter. An empty
// parameter results in Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// ParseList parses a comma separated list of UUIDs. Whitespace around the
// elements and empty elements are ignored.
func ParseList(s string) ([]google_uuid.UUID, error) {
	ids := []google_uuid.UUID{}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := google_uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid UUID", part)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
