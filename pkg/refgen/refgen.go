// Package refgen generates the human-readable references used by the
// order and payment flows. The generator is an interface so tests can
// supply deterministic references.
package refgen

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator produces order numbers and payment transaction references
type Generator interface {
	// OrderNumber returns "SO" + YYYYMMDD + 4 uppercase hex characters
	OrderNumber(t time.Time) string
	// TransactionRef returns "TX" + 12 uppercase hex characters
	TransactionRef() string
}

type uuidGenerator struct{}

// New returns the default UUID-backed generator
func New() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) OrderNumber(t time.Time) string {
	return "SO" + t.UTC().Format("20060102") + randomHex(4)
}

func (uuidGenerator) TransactionRef() string {
	return "TX" + randomHex(12)
}

func randomHex(n int) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(hex[:n])
}
