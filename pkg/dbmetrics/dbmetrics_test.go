package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "insert", operation("INSERT INTO transition_journal (id) VALUES ($1)"))
	assert.Equal(t, "select", operation("\n\tSELECT id FROM transition_journal"))
	assert.Equal(t, "unknown", operation("   "))
}
