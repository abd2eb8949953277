package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse_Valid(t *testing.T) {
	d, ok := Parse("29/02/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC), d)

	d, ok = Parse("1/3/2025")
	require.True(t, ok)
	assert.Equal(t, "01/03/2025", Format(d))
}

func Test_Parse_Rejects(t *testing.T) {
	for _, s := range []string{
		"31/02/2024",
		"29/02/2023",
		"31/04/2024",
		"00/01/2024",
		"01/13/2024",
		"01/00/2024",
		"abc/01/2024",
		"01/01",
		"01/01/2024/1",
		"",
		"2024-01-01",
		"1.5/01/2024",
		"01/01/0",
		"01/01/10000",
	} {
		_, ok := Parse(s)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

func Test_RoundTrip(t *testing.T) {
	start := time.Date(1999, time.January, 1, 12, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2030; d = d.AddDate(0, 0, 7) {
		s := Format(d)
		parsed, ok := Parse(s)
		require.True(t, ok, s)
		assert.Equal(t, d, parsed)
		assert.Equal(t, s, Format(parsed))
	}
}

func Test_Format_IsZoneIndependent(t *testing.T) {
	d, ok := Parse("15/06/2024")
	require.True(t, ok)
	for _, name := range []string{"Pacific/Honolulu", "Asia/Tokyo", "Pacific/Kiritimati", "America/Los_Angeles"} {
		loc, err := time.LoadLocation(name)
		if err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		assert.Equal(t, "15/06/2024", Format(d.In(loc)), name)
		assert.Equal(t, d, Canonical(d.In(loc)), name)
	}
}

func Test_Today(t *testing.T) {
	now := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "10/03/2024", Format(Today(now, nil)))

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "11/03/2024", Format(Today(now, plusTwo)))
}
