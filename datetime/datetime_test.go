package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"param-supplier/datetime"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	ts, err := datetime.ParseTimestamp("2024-03-05 10:11:12.123456789")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 10, 11, 12, 123456789, time.UTC), ts.Time)
	assert.Equal(t, "2024-03-05 10:11:12.123456789", ts.String())

	ts, err = datetime.ParseTimestamp("2024-03-05 10:11:12")
	require.NoError(t, err)
	assert.Equal(t, 0, ts.Nanosecond())

	ts, err = datetime.ParseTimestamp("2024-03-05T10:11:12Z")
	require.NoError(t, err)
	assert.Equal(t, 12, ts.Second())

	_, err = datetime.ParseTimestamp("2024-03-05")
	assert.ErrorIs(t, err, datetime.ErrNoLayout)
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tod, err := datetime.ParseTimeOfDay(" 23:59:58 ")
	require.NoError(t, err)
	assert.Equal(t, "23:59:58", tod.String())
	assert.Equal(t, 0, tod.Year())

	tod, err = datetime.ParseTimeOfDay("07:30")
	require.NoError(t, err)
	assert.Equal(t, "07:30:00", tod.String())

	_, err = datetime.ParseTimeOfDay("25:00:00")
	assert.ErrorIs(t, err, datetime.ErrNoLayout)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := datetime.ParseDate("1999-12-31")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31", d.String())

	d, err = datetime.ParseDate("31/12/1999", "02/01/2006")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31", d.String())

	_, err = datetime.ParseDate("1999-13-01")
	assert.ErrorIs(t, err, datetime.ErrNoLayout)
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		expected time.Time
	}{
		{"2020-01-02T03:04:05Z", time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2020-01-02 03:04:05", time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2020-01-02", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			v, err := datetime.ParseTime(tt.text)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(v), "got %s", v)
		})
	}

	_, err := datetime.ParseTime("yesterday")
	assert.ErrorIs(t, err, datetime.ErrNoLayout)
}

func TestOf(t *testing.T) {
	t.Parallel()

	src := time.Date(2021, time.June, 7, 8, 9, 10, 11, time.UTC)

	assert.Equal(t, src, datetime.TimestampOf(src).Time)
	assert.Equal(t, "08:09:10", datetime.TimeOfDayOf(src).String())
	assert.Equal(t, "2021-06-07", datetime.DateOf(src).String())
	assert.Equal(t, 0, datetime.DateOf(src).Hour())
}
