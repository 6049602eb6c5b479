package postgres

import (
	"database/sql"
	"errors"
	"strings"
)

// seasonOrderCTE numbers the season's scheduled matches in season order.
// It expects the season public id as $1.
const seasonOrderCTE = `season_order AS (
	SELECT public_id, ROW_NUMBER() OVER (ORDER BY matchday, kickoff_at, public_id) AS seq
	FROM matches
	WHERE season_public_id = $1
	  AND deleted_at IS NULL
	  AND UPPER(status) NOT IN ('CANCELLED', 'ABANDONED')
)`

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func seasonLockKey(seasonID string) string {
	return "discipline:" + strings.TrimSpace(seasonID)
}
