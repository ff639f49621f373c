package history

import (
	"context"
	"testing"

	"github.com/dragounv/open-wacz/internal/testsupport"
)

func TestOpenDisabledReturnsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutHistory())

	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if store != nil {
		t.Fatal("expected nil store when history is disabled")
	}
	// Close on a nil store is a safe no-op.
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestAddAndList(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	first := Record{
		HarvestName:   "Linkra-2024-03-crawl-001",
		SourceArchive: "/data/crawl-001.wacz",
		HarvestPath:   "/out/Linkra-2024-03-crawl-001",
		WACZCreated:   "2024-03-15T10:00:00Z",
		ConvertedAt:   "2024-04-01T10:00:00Z",
	}
	second := Record{
		HarvestName:   "Linkra-2024-04-crawl-002",
		SourceArchive: "/data/crawl-002.wacz",
		HarvestPath:   "/out/Linkra-2024-04-crawl-002",
		WACZCreated:   "2024-04-20T08:00:00Z",
		ConvertedAt:   "2024-05-01T10:00:00Z",
	}

	if _, err := store.Add(ctx, first); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Add(ctx, second); err != nil {
		t.Fatal(err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Newest first.
	if records[0].HarvestName != second.HarvestName {
		t.Fatalf("expected newest record first, got %q", records[0].HarvestName)
	}
	if records[1].SourceArchive != first.SourceArchive {
		t.Fatalf("source mismatch: %q", records[1].SourceArchive)
	}
}

func TestAddDefaultsConvertedAt(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := store.Add(context.Background(), Record{HarvestName: "h", SourceArchive: "s", HarvestPath: "p", WACZCreated: "2024-01-01T00:00:00Z"}); err != nil {
		t.Fatal(err)
	}

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ConvertedAt == "" {
		t.Fatalf("expected populated converted_at, got %+v", records)
	}
}
