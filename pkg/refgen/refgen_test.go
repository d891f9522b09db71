package refgen

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumberFormat(t *testing.T) {
	gen := New()
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	got := gen.OrderNumber(at)

	require.Len(t, got, 14)
	assert.Regexp(t, regexp.MustCompile(`^SO20250314[0-9A-F]{4}$`), got)
}

func TestTransactionRefFormat(t *testing.T) {
	gen := New()

	got := gen.TransactionRef()

	require.Len(t, got, 14)
	assert.Regexp(t, regexp.MustCompile(`^TX[0-9A-F]{12}$`), got)
}

func TestTransactionRefUnique(t *testing.T) {
	gen := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := gen.TransactionRef()
		assert.False(t, seen[ref], "duplicate ref %s", ref)
		seen[ref] = true
	}
}
