package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {

	loc, err := Location("US/Pacific")
	require.NoError(t, err)

	type test struct {
		input string
		unix  int64
		err   bool
	}

	tests := map[string]test{
		"date": {
			input: "2020-03-02",
			unix:  time.Date(2020, 3, 2, 0, 0, 0, 0, loc).Unix(),
		},
		"date-time": {
			input: "2020-03-02 10:30:00",
			unix:  time.Date(2020, 3, 2, 10, 30, 0, 0, loc).Unix(),
		},
		"rfc3339": {
			input: "2020-03-02T10:30:00Z",
			unix:  time.Date(2020, 3, 2, 10, 30, 0, 0, time.UTC).Unix(),
		},
		"unix": {
			input: "1583140000",
			unix:  1583140000,
		},
		"invalid": {
			input: "yesterday",
			err:   true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ts, err := Parse(tt.input, loc)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.unix, ts.Unix())
		})
	}

}

func TestDays(t *testing.T) {
	loc, err := Location("US/Pacific")
	require.NoError(t, err)

	from := time.Date(2020, 3, 1, 0, 0, 0, 0, loc)
	assert.Equal(t, 0, Days(from, from))
	assert.Equal(t, 1, Days(from, from.Add(25*time.Hour)))
	assert.Equal(t, 0, Days(from, from.Add(23*time.Hour)))
	// across the daylight saving switch the day is 23 hours long
	assert.Equal(t, 9, Days(from, time.Date(2020, 3, 11, 0, 0, 0, 0, loc)))
	assert.Equal(t, 30, Days(from, time.Date(2020, 3, 31, 1, 0, 0, 0, loc)))
}

func TestLocation(t *testing.T) {
	loc, err := Location("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = Location("Nowhere/Land")
	assert.Error(t, err)
}

func TestAt(t *testing.T) {
	assert.Equal(t, time.Date(2021, 2, 3, 4, 0, 0, 0, time.UTC), At(2021, 2, 3, 4))
}
