// Package idgenerator provides functionality for generating unique IDs
// that are composed of a prefix, a timestamp, and a base64-encoded UUID.
// Document ids carry their stage prefix (RES, ENG, BDC, FAC, DEP, PAY) so
// they stay recognizable in journals and audit trails.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate builds a unique ID by combining a prefix string, a timestamp and
// a base64-encoded UUID. Without prefixes the prefix part is omitted.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := time.Now().UnixMilli()
	encodedUUID := rawURLEncodedUUID(uuid.New())

	if prefix == "" {
		return fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}

	return fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)
}

func rawURLEncodedUUID(id uuid.UUID) string {
	uuidInBytes := id[:]
	return base64.RawURLEncoding.EncodeToString(uuidInBytes)
}
