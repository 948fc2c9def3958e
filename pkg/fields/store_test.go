package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-demandwizard/pkg/fields"
)

func TestStoreSetOverwritesSingleField(t *testing.T) {
	store := fields.NewStore(fields.Values{
		fields.Title:    "Original title",
		fields.Category: "软件开发",
	})

	store.Set(fields.Title, "Replaced title")

	want := fields.Values{
		fields.Title:    "Replaced title",
		fields.Category: "软件开发",
	}
	if diff := cmp.Diff(want, store.All()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreGetUnsetReturnsEmpty(t *testing.T) {
	store := fields.NewStore(nil)
	if got := store.Get(fields.Budget); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestStoreAllIsSnapshot(t *testing.T) {
	seed := fields.Values{fields.Title: "seed"}
	store := fields.NewStore(seed)
	seed[fields.Title] = "mutated seed"

	snapshot := store.All()
	snapshot[fields.Title] = "mutated snapshot"

	if got := store.Get(fields.Title); got != "seed" {
		t.Fatalf("store leaked through copies, got %q", got)
	}
}

func TestNamesCanonicalOrder(t *testing.T) {
	want := []string{"title", "description", "category", "budget", "timeline", "cooperationType"}
	if diff := cmp.Diff(want, fields.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if fields.Known("priority") {
		t.Fatalf("unexpected known field")
	}
}
