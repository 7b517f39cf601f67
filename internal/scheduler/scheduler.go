package scheduler

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/settlement"
	"auction-house/utils"
	"container/heap"
	"context"
	"errors"
	"sync"
	"time"
)

// Settler is the settlement trigger the scheduler drives.
type Settler interface {
	Settle(ctx context.Context, goodID string) (settlement.Result, error)
}

// entry is one pending auction in the due-time index.
type entry struct {
	goodID   string
	dueAt    time.Time
	attempts int
}

// dueHeap is a min-heap of pending auctions keyed by close time.
type dueHeap []entry

func (h dueHeap) Len() int           { return len(h) }
func (h dueHeap) Less(i, j int) bool { return h[i].dueAt.Before(h[j].dueAt) }
func (h dueHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *dueHeap) Push(x any)        { *h = append(*h, x.(entry)) }
func (h *dueHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Scheduler tracks every open auction's close time in a due-time index and
// fires settlement at (or past) that instant via a periodic sweep. One
// instance is owned by the composition root; Stop drains it.
type Scheduler struct {
	settler     Settler
	repo        repository.LedgerStore
	interval    time.Duration
	maxRetries  int
	baseBackoff time.Duration

	// Now is the clock used for due checks. Tests override it.
	Now func() time.Time

	mu    sync.Mutex
	queue dueHeap

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a scheduler that sweeps the due-time index every interval.
func New(settler Settler, repo repository.LedgerStore, interval time.Duration) *Scheduler {
	return &Scheduler{
		settler:     settler,
		repo:        repo,
		interval:    interval,
		maxRetries:  5,
		baseBackoff: 2 * time.Second,
		Now:         time.Now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// OnGoodCreated registers a freshly listed good's close time without a
// rescan. Safe to call from any goroutine.
func (s *Scheduler) OnGoodCreated(good model.Good) {
	s.push(entry{goodID: good.GoodID, dueAt: good.CloseAt()})
}

func (s *Scheduler) push(e entry) {
	s.mu.Lock()
	heap.Push(&s.queue, e)
	s.mu.Unlock()
}

// Recover rebuilds the due-time index from every unsold good in the ledger
// and immediately settles the ones whose close time already passed while
// the process was down.
func (s *Scheduler) Recover(ctx context.Context) error {
	goods, err := s.repo.ListUnsoldGoods(ctx)
	if err != nil {
		return err
	}

	for _, good := range goods {
		s.push(entry{goodID: good.GoodID, dueAt: good.CloseAt()})
	}
	utils.Info("scheduler: recovered pending auctions", map[string]any{"count": len(goods)})

	// Catch-up sweep for auctions that closed during downtime.
	s.sweep(ctx)
	return nil
}

// Run sweeps the index periodically until the context is cancelled or
// Stop is called. The sweep in progress always finishes before Run returns.
func (s *Scheduler) Run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop drains the scheduler: the current sweep completes, then Run returns.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// sweep pops every due entry and settles it. Transient failures are
// re-queued with exponential backoff; a good that exhausts its retries is
// a stuck auction and is surfaced at error level, never silently dropped.
func (s *Scheduler) sweep(ctx context.Context) {
	now := s.Now()

	s.mu.Lock()
	var due []entry
	for s.queue.Len() > 0 && !s.queue[0].dueAt.After(now) {
		due = append(due, heap.Pop(&s.queue).(entry))
	}
	s.mu.Unlock()

	for _, e := range due {
		s.fire(ctx, e)
	}
}

func (s *Scheduler) fire(ctx context.Context, e entry) {
	_, err := s.settler.Settle(ctx, e.goodID)
	if err == nil {
		return
	}

	if errors.Is(err, auctionerrors.ErrGoodNotFound) {
		utils.Warn("scheduler: pending good vanished", map[string]any{
			"good_id": e.goodID,
			"error":   err.Error(),
		})
		return
	}

	e.attempts++
	if e.attempts >= s.maxRetries {
		utils.Error("scheduler: auction stuck, retries exhausted", map[string]any{
			"good_id":  e.goodID,
			"attempts": e.attempts,
			"error":    err.Error(),
		})
		return
	}

	backoff := s.baseBackoff << (e.attempts - 1)
	e.dueAt = s.Now().Add(backoff)
	s.push(e)
	utils.Warn("scheduler: settlement failed, retrying", map[string]any{
		"good_id":  e.goodID,
		"attempt":  e.attempts,
		"retry_in": backoff.String(),
		"error":    err.Error(),
	})
}
