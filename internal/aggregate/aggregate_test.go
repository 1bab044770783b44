package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type rec struct {
	date string
	time string
	name string
}

func recKey(r rec) (string, string) {
	return r.date, r.time
}

func names(records []rec) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.name
	}
	return out
}

func TestSortByLaunchDateTime(t *testing.T) {
	input := []rec{
		{"2024-01-01", "10:00", "jan"},
		{"2024-06-01", "08:00", "jun"},
		{"bad", "x", "bad"},
	}

	tests := []struct {
		name       string
		records    []rec
		descending bool
		expected   []string
	}{
		{"Descending puts unparseable last", input, true, []string{"jun", "jan", "bad"}},
		{"Ascending puts unparseable first", input, false, []string{"bad", "jan", "jun"}},
		{
			name: "US date format and seconds",
			records: []rec{
				{"06/01/2024", "08:00:30", "us"},
				{"2024-06-01", "08:00:00", "iso"},
			},
			descending: true,
			expected:   []string{"us", "iso"},
		},
		{
			name: "Bad time is midnight",
			records: []rec{
				{"2024-06-01", "00:00:01", "after"},
				{"2024-06-01", "soon", "midnight"},
			},
			descending: true,
			expected:   []string{"after", "midnight"},
		},
		{
			name: "Stable on ties",
			records: []rec{
				{"2024-06-01", "08:00", "first"},
				{"bad", "", "broken-1"},
				{"2024-06-01", "08:00", "second"},
				{"", "", "broken-2"},
			},
			descending: true,
			expected:   []string{"first", "second", "broken-1", "broken-2"},
		},
		{"Empty", []rec{}, true, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := SortByLaunchDateTime(tt.records, recKey, tt.descending, zap.NewNop())
			assert.Equal(t, tt.expected, names(sorted))
		})
	}
}

func TestSortByLaunchDateTime_DoesNotMutateInput(t *testing.T) {
	input := []rec{{"2024-01-01", "", "a"}, {"2025-01-01", "", "b"}}
	_ = SortByLaunchDateTime(input, recKey, true, nil)
	assert.Equal(t, []string{"a", "b"}, names(input))
}

func TestSortByLaunchDateTime_FailSoft(t *testing.T) {
	input := []rec{{"2024-01-01", "", "a"}, {"2025-01-01", "", "b"}, {"2023-01-01", "", "c"}}
	panicky := func(r rec) (string, string) {
		if r.name == "c" {
			panic("broken record")
		}
		return r.date, r.time
	}

	var sorted []rec
	assert.NotPanics(t, func() {
		sorted = SortByLaunchDateTime(input, panicky, true, zap.NewNop())
	})
	assert.Equal(t, []string{"a", "b", "c"}, names(sorted))
}

func TestLaunchTimestamp(t *testing.T) {
	tests := []struct {
		date, clock string
		expected    time.Time
	}{
		{"2024-06-01", "08:00", time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)},
		{"2024-06-01", "08:00:59.5", time.Date(2024, 6, 1, 8, 0, 59, 500000000, time.UTC)},
		{"06/01/2024", "23:15:01", time.Date(2024, 6, 1, 23, 15, 1, 0, time.UTC)},
		{" 2024-06-01 ", "", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-02-30", "08:00", time.Time{}},
		{"", "08:00", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.date, tt.clock), func(t *testing.T) {
			assert.Equal(t, tt.expected, LaunchTimestamp(tt.date, tt.clock))
		})
	}
}

func TestParseSortOptions(t *testing.T) {
	tests := []struct {
		sort, order string
		expected    SortOptions
	}{
		{"", "", SortOptions{ByDateTime: false, Descending: true}},
		{"datetime", "", SortOptions{ByDateTime: true, Descending: true}},
		{"DateTime", "ASC", SortOptions{ByDateTime: true, Descending: false}},
		{"datetime", "desc", SortOptions{ByDateTime: true, Descending: true}},
		{"title", "sideways", SortOptions{ByDateTime: false, Descending: true}},
	}

	for _, tt := range tests {
		t.Run(tt.sort+"/"+tt.order, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSortOptions(tt.sort, tt.order))
		})
	}
}

func TestSummarize(t *testing.T) {
	records := []map[string]any{
		{"vehicle": "Falcon 9", "launchSite": "SLC-40", "missionStatus": "upcoming", "missionType": "starlink", "isLive": true},
		{"vehicle": "Falcon 9", "launchSite": "LC-39A", "missionStatus": "upcoming", "missionType": "crew", "isOngoing": true},
		{"vehicle": "Starship", "launchSite": nil, "missionStatus": 42, "isLive": "true"},
	}

	summary := Summarize(records)

	assert.Equal(t, 3, summary.TotalLaunches)
	assert.Equal(t, 2, summary.UpcomingLaunches)
	assert.Equal(t, 1, summary.StarlinkMissions)
	assert.Equal(t, 1, summary.LiveLaunches)
	assert.Equal(t, 1, summary.OngoingLaunches)
	assert.Equal(t, map[string]int{"Falcon 9": 2, "Starship": 1}, summary.Vehicles)
	assert.Equal(t, map[string]int{"SLC-40": 1, "LC-39A": 1, "Unknown": 1}, summary.LaunchSites)
	assert.Equal(t, map[string]int{"upcoming": 2, "Unknown": 1}, summary.MissionStatuses)
	assert.Equal(t, map[string]int{"starlink": 1, "crew": 1, "Unknown": 1}, summary.MissionTypes)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.TotalLaunches)
	assert.NotNil(t, summary.Vehicles)
	assert.Empty(t, summary.Vehicles)
}

func BenchmarkSortByLaunchDateTime(b *testing.B) {
	records := make([]rec, 500)
	for i := range records {
		records[i] = rec{
			date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*7%365).Format("2006-01-02"),
			time: fmt.Sprintf("%02d:%02d", i%24, i%60),
			name: fmt.Sprint(i),
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SortByLaunchDateTime(records, recKey, true, nil)
	}
}
