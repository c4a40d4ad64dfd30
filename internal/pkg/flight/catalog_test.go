package flight

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCatalog_ForDate_Closure(t *testing.T) {
	catalog := NewCatalog()

	forDateRequest := func(date string, wantNumbers []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := catalog.ForDate(date)

			diff := cmp.Diff(wantNumbers, numbers(got))
			if diff != "" {
				t.Fatalf("ForDate result mismatch (-want +got):\n%s", diff)
			}

			again := catalog.ForDate(date)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Fatalf("ForDate is not idempotent (-first +second):\n%s", diff)
			}
		}
	}

	t.Run("two_flights", forDateRequest("2024-07-07", []string{"AZ324", "EK404"}))
	t.Run("catalog_order", forDateRequest("2024-07-14", []string{"OS564", "EI3250", "AS1532", "AY913"}))
	t.Run("unmatched", forDateRequest("2025-01-01", []string{}))
}

func TestCatalog_ForDate_PreservesOrder(t *testing.T) {
	catalog := NewCatalog()
	all := catalog.All()

	for _, date := range []string{"2024-07-06", "2024-07-10", "2024-07-14"} {
		got := catalog.ForDate(date)

		// every result appears in the catalog after the previous one
		last := -1
		for _, f := range got {
			idx := -1
			for i, c := range all {
				if c == f {
					idx = i
					break
				}
			}
			if idx <= last {
				t.Fatalf("flight %s out of catalog order for %s", f.Number, date)
			}
			last = idx
		}
	}
}

func TestCatalog_All(t *testing.T) {
	catalog := NewCatalog()

	all := catalog.All()
	assert.Len(t, all, 20)

	all[0].Price = "$1"
	assert.Equal(t, "$650", catalog.All()[0].Price, "All must return a copy")
}

func TestCatalog_Contains(t *testing.T) {
	catalog := NewCatalog()
	f := catalog.All()[2]

	assert.True(t, catalog.Contains(f))

	changed := f
	changed.Price = "$211"
	assert.False(t, catalog.Contains(changed))
}
