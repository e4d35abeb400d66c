package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	t.Run("defaults to event_date DESC", func(t *testing.T) {
		assert.Equal(t, "event_date DESC", orderClause("", ""))
	})

	t.Run("known column and direction pass through", func(t *testing.T) {
		assert.Equal(t, "client_name ASC", orderClause("client_name", "asc"))
		assert.Equal(t, "created_at ASC", orderClause("created_at", "ASC"))
		assert.Equal(t, "status DESC", orderClause("status", "desc"))
	})

	t.Run("unknown column falls back to event_date", func(t *testing.T) {
		assert.Equal(t, "event_date DESC", orderClause("client_phone", ""))
		assert.Equal(t, "event_date ASC", orderClause("(SELECT CASE WHEN true THEN 1 END)", "asc"))
		assert.Equal(t, "event_date DESC", orderClause("event_date; DROP TABLE bookings", ""))
	})

	t.Run("unknown direction falls back to DESC", func(t *testing.T) {
		assert.Equal(t, "event_date DESC", orderClause("event_date", "ascending"))
		assert.Equal(t, "event_date DESC", orderClause("event_date", "asc, client_name"))
	})
}
