package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/models"
)

func TestDateJSON(t *testing.T) {
	date := models.NewDate(2025, time.June, 1)

	encoded, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(encoded))

	var decoded models.Date
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, decoded.Equal(date))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var date models.Date
	assert.Error(t, json.Unmarshal([]byte(`"June 1st"`), &date))
	assert.Error(t, json.Unmarshal([]byte(`"2025-13-40"`), &date))
}

func TestDateOfDropsTimeAndZone(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*3600)
	moment := time.Date(2025, time.June, 1, 23, 45, 0, 0, zone)

	date := models.DateOf(moment)
	assert.Equal(t, "2025-06-01", date.String())
	assert.True(t, date.Equal(models.NewDate(2025, time.June, 1)))
}

func TestDateScan(t *testing.T) {
	var date models.Date
	require.NoError(t, date.Scan(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-01", date.String())

	require.NoError(t, date.Scan("2025-07-02"))
	assert.Equal(t, "2025-07-02", date.String())

	assert.Error(t, date.Scan(42))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, models.StatusPending.Valid())
	assert.True(t, models.StatusInProgress.Valid())
	assert.True(t, models.StatusCompleted.Valid())
	assert.False(t, models.Status("done").Valid())
	assert.False(t, models.Status("").Valid())
}
