package ingest_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"aedmap/internal/domain"
	"aedmap/internal/ingest"
	"aedmap/pkg/e"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeSource struct {
	body []byte
	err  error

	started chan struct{} // closed on first Fetch entry
	blockCh chan struct{} // Fetch waits for this when set
	once    sync.Once
}

func (f *fakeSource) Fetch(ctx context.Context) ([]byte, error) {
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.blockCh != nil {
		<-f.blockCh
	}
	return f.body, f.err
}

// fakeStore replicates the atomic-replace contract in memory: the staged
// rows replace the committed rows only when the load callback succeeds.
type fakeStore struct {
	mu        sync.Mutex
	committed []domain.AedDraft
	failAfter int // fail the Nth Insert call, 0 = never
	inserts   int
}

func (s *fakeStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.committed)), nil
}

type fakeBatchWriter struct {
	store  *fakeStore
	staged []domain.AedDraft
}

func (w *fakeBatchWriter) Insert(ctx context.Context, drafts []domain.AedDraft) error {
	w.store.inserts++
	if w.store.failAfter > 0 && w.store.inserts >= w.store.failAfter {
		return errors.New("simulated insert failure")
	}
	w.staged = append(w.staged, drafts...)
	return nil
}

func (s *fakeStore) ReplaceAll(ctx context.Context, load func(ctx context.Context, w ingest.BatchWriter) error) error {
	w := &fakeBatchWriter{store: s}
	if err := load(ctx, w); err != nil {
		// rollback: committed data untouched
		return err
	}
	s.mu.Lock()
	s.committed = w.staged
	s.mu.Unlock()
	return nil
}

const feedCSV = "AED Name,AED Address,Latitude,Longitude,Whether the AED can be used by anyone,AED brand\n" +
	"Station AED,1 Station Rd,22.3193,114.1694,Yes,Philips\n" +
	"Mall AED,2 Mall Way,22.28,114.17,No,Zoll\n" +
	"Broken AED,3 Nowhere,95.0,114.0,Yes,\n" +
	"Garbled AED,4 Odd St,abc,114.0,Yes,\n"

func TestPipelineRun_HappyPath(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	p := ingest.NewPipeline(&fakeSource{body: []byte(feedCSV)}, store, 100, testLogger())

	sum, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if sum.Success != 2 || sum.Skipped != 2 || sum.Errors != 0 {
		t.Fatalf("summary = %+v, want 2 accepted / 2 skipped / 0 errored", sum)
	}
	if sum.RecordsBefore != 0 || sum.RecordsAfter != 2 {
		t.Fatalf("counts = before %d after %d, want 0/2", sum.RecordsBefore, sum.RecordsAfter)
	}
	if len(store.committed) != 2 {
		t.Fatalf("store holds %d rows, want 2", len(store.committed))
	}
	if store.committed[0].Name != "Station AED" || !store.committed[0].PublicUse {
		t.Fatalf("first committed draft wrong: %+v", store.committed[0])
	}
}

func TestPipelineRun_Idempotent(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	p := ingest.NewPipeline(&fakeSource{body: []byte(feedCSV)}, store, 100, testLogger())

	first, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first.RecordsAfter != second.RecordsAfter {
		t.Fatalf("record count changed between identical runs: %d vs %d",
			first.RecordsAfter, second.RecordsAfter)
	}
	if second.RecordsBefore != first.RecordsAfter {
		t.Fatalf("second run should start from the first run's count, got %d", second.RecordsBefore)
	}
}

func TestPipelineRun_FetchFailureLeavesDataUntouched(t *testing.T) {
	t.Parallel()

	store := &fakeStore{committed: []domain.AedDraft{{Name: "existing"}}}
	p := ingest.NewPipeline(&fakeSource{err: errors.New("connection refused")}, store, 100, testLogger())

	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if len(store.committed) != 1 {
		t.Fatalf("fetch failure must not mutate data, store has %d rows", len(store.committed))
	}
}

func TestPipelineRun_MappingFailureAborts(t *testing.T) {
	t.Parallel()

	body := "Nothing,Useful\nfoo,bar\n"
	store := &fakeStore{committed: []domain.AedDraft{{Name: "existing"}}}
	p := ingest.NewPipeline(&fakeSource{body: []byte(body)}, store, 100, testLogger())

	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("expected mapping error")
	}
	if len(store.committed) != 1 {
		t.Fatal("mapping failure must not mutate data")
	}
}

func TestPipelineRun_InsertFailureRollsBack(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		committed: []domain.AedDraft{{Name: "old-1"}, {Name: "old-2"}, {Name: "old-3"}},
		failAfter: 1,
	}
	// batch size 1 forces a flush per accepted row
	p := ingest.NewPipeline(&fakeSource{body: []byte(feedCSV)}, store, 1, testLogger())

	before, _ := store.Count(context.Background())
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("expected transaction failure")
	}
	after, _ := store.Count(context.Background())

	if before != after {
		t.Fatalf("rollback violated: before=%d after=%d", before, after)
	}
}

func TestPipelineRun_ConcurrentRunRejected(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	started := make(chan struct{})
	src := &fakeSource{body: []byte(feedCSV), blockCh: block, started: started}
	store := &fakeStore{}
	p := ingest.NewPipeline(src, store, 100, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := p.Run(context.Background())
		done <- err
	}()

	// Wait until the first run holds the gate, then a second trigger must
	// fail fast instead of racing on the replace transaction.
	<-started
	_, rejected := p.Run(context.Background())
	if !errors.Is(rejected, e.ErrRefreshRunning) {
		t.Fatalf("expected ErrRefreshRunning, got %v", rejected)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first run failed: %v", err)
	}
}
