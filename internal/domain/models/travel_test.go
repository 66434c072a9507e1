package models

import "testing"

func int64p(v int64) *int64 { return &v }

func TestPackageFilterMatches(t *testing.T) {
	pkg := Package{
		ID: "p1", DestinationID: "d1",
		Price: 99900, Duration: 4, Type: "adventure",
	}

	cases := []struct {
		name   string
		filter *PackageFilter
		want   bool
	}{
		{"nil filter matches", nil, true},
		{"empty filter matches", &PackageFilter{}, true},
		{"price min inclusive", &PackageFilter{PriceMin: int64p(99900)}, true},
		{"price min excludes", &PackageFilter{PriceMin: int64p(100000)}, false},
		{"price max inclusive", &PackageFilter{PriceMax: int64p(99900)}, true},
		{"price max excludes", &PackageFilter{PriceMax: int64p(99899)}, false},
		{"short bucket includes 4 days", &PackageFilter{Duration: "short"}, true},
		{"medium bucket excludes 4 days", &PackageFilter{Duration: "medium"}, false},
		{"unknown bucket filters nothing", &PackageFilter{Duration: "weekend"}, true},
		{"type match", &PackageFilter{Type: "adventure"}, true},
		{"type mismatch", &PackageFilter{Type: "beach"}, false},
		{"destination match", &PackageFilter{DestinationID: "d1"}, true},
		{"destination mismatch", &PackageFilter{DestinationID: "d2"}, false},
		{"all constraints AND", &PackageFilter{PriceMin: int64p(50000), Type: "adventure", DestinationID: "d2"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(pkg); got != tc.want {
				t.Fatalf("Matches = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDurationBounds(t *testing.T) {
	cases := []struct {
		bucket   string
		min, max int
		ok       bool
	}{
		{"short", 1, 4, true},
		{"medium", 5, 8, true},
		{"long", 9, 0, true},
		{"", 0, 0, false},
		{"weekend", 0, 0, false},
	}
	for _, tc := range cases {
		min, max, ok := DurationBounds(tc.bucket)
		if min != tc.min || max != tc.max || ok != tc.ok {
			t.Fatalf("DurationBounds(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tc.bucket, min, max, ok, tc.min, tc.max, tc.ok)
		}
	}
}
