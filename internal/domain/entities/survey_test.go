package entities

import (
	"testing"
	"time"
)

func TestSurveyPeriods(t *testing.T) {
	cases := []struct {
		name         string
		now          time.Time
		wantCurrent  string
		wantPrevious string
	}{
		{
			name:         "odd month uses the previous even month",
			now:          time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC),
			wantCurrent:  "202412",
			wantPrevious: "202410",
		},
		{
			name:         "even month is its own period",
			now:          time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantCurrent:  "202504",
			wantPrevious: "202502",
		},
		{
			name:         "march rolls back to february",
			now:          time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			wantCurrent:  "202502",
			wantPrevious: "202412",
		},
		{
			name:         "february wraps the previous period into december",
			now:          time.Date(2025, time.February, 28, 23, 59, 0, 0, time.UTC),
			wantCurrent:  "202502",
			wantPrevious: "202412",
		},
		{
			name:         "december stays in the same year",
			now:          time.Date(2024, time.December, 31, 12, 0, 0, 0, time.UTC),
			wantCurrent:  "202412",
			wantPrevious: "202410",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current, previous := SurveyPeriods(tc.now)
			if current != tc.wantCurrent || previous != tc.wantPrevious {
				t.Fatalf("SurveyPeriods(%s) = (%s, %s), want (%s, %s)",
					tc.now.Format("2006-01-02"), current, previous, tc.wantCurrent, tc.wantPrevious)
			}
		})
	}
}
