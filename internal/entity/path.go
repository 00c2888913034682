package entity

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// RootID is the id of the virtual root every tree path starts with.
const RootID = -1

// PathIDs parses a comma separated node path ("-1,1051,1060") into ids.
// Segments that are not integers become 0.
func PathIDs(path string) []int {
	if path == "" {
		return nil
	}

	parts := strings.Split(path, ",")
	ids := make([]int, 0, len(parts))

	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			id = 0
		}

		ids = append(ids, id)
	}

	return ids
}

// Udi builds an entity identifier of the form "umb://<type>/<key without dashes>".
func Udi(entityType string, key uuid.UUID) string {
	return "umb://" + entityType + "/" + strings.ReplaceAll(key.String(), "-", "")
}
