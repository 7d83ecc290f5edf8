package bookingid

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var idPattern = regexp.MustCompile(`^SP\d+[0-9A-Z]{4}$`)

func TestNew_MatchesPattern(t *testing.T) {
	id := New()

	assert.NotEmpty(t, id)
	assert.True(t, idPattern.MatchString(id), "unexpected id format: %s", id)
	assert.True(t, strings.HasPrefix(id, "SP"))
}

func TestAt_EmbedsTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	id := At(now)

	expected := "SP" + strconv.FormatInt(now.UnixMilli(), 10)
	assert.True(t, strings.HasPrefix(id, expected))
	assert.Len(t, id, len(expected)+4)
}

func TestNew_NoImmediateCollisions(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}
