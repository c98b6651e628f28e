// ABOUTME: Shared key encoding and list helpers for alias store backends.
// ABOUTME: Durable backends store JSON string arrays under "alias:<category>:<field>".
package alias

import (
	"strings"

	"github.com/harperreed/pulse/internal/models"
)

// KeyPrefix namespaces all learned alias entries in durable KV backends.
const KeyPrefix = "alias:"

// storeKey builds the durable KV key for (category, field).
func storeKey(c models.Category, field string) string {
	return KeyPrefix + string(c) + ":" + field
}

// parseKey splits a durable KV key back into category and field.
func parseKey(key string) (models.Category, string, bool) {
	rest, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok {
		return "", "", false
	}
	cat, field, ok := strings.Cut(rest, ":")
	if !ok {
		return "", "", false
	}
	return models.Category(cat), field, true
}

// splitKey splits a memory-store key ("category/field").
func splitKey(key string) (models.Category, string) {
	cat, field, _ := strings.Cut(key, "/")
	return models.Category(cat), field
}

// normalizeHeader lower-cases and trims a header before it enters the
// learned tier.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// appendUnique appends v to list unless already present.
func appendUnique(list []string, v string) []string {
	for _, got := range list {
		if got == v {
			return list
		}
	}
	return append(list, v)
}
