package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/api/metrics"
	"github.com/qsafe/devicehub/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

var ErrStopped = errors.New("audit dispatcher stopped")

// Ledger is where events finally land (MongoDB or memory).
type Ledger interface {
	Insert(ctx context.Context, e domain.AuditEvent) error
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEvent, error)
}

// Dispatcher writes audit events asynchronously through a fixed set of
// workers. Events are sharded on device id (user id when there is none), so
// the entries for one device reach the ledger in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	ledger  Ledger
	log     zerolog.Logger

	// quit is closed first on Stop to release senders blocked on a full
	// shard; mu then keeps close(ch) from racing a send.
	quit     chan struct{}
	quitOnce sync.Once
	mu       sync.RWMutex
	stopped  bool
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers workers; numWorkers <= 0
// means defaultWorkers.
func NewDispatcher(numWorkers int, ledger Ledger, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		ledger:  ledger,
		log:     log,
		quit:    make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches the workers. They drain their channel until Stop closes it.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Record enqueues an event. When the worker's buffer is full it waits until
// there is room, ctx is done or Stop is called.
func (d *Dispatcher) Record(ctx context.Context, e domain.AuditEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		metrics.AuditErrorsTotal.WithLabelValues("dispatcher_stopped").Inc()
		return ErrStopped
	}

	idx := d.shardIndex(shardKey(e))
	select {
	case d.workers[idx] <- e:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	case <-d.quit:
		metrics.AuditErrorsTotal.WithLabelValues("dispatcher_stopped").Inc()
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List reads straight from the ledger; events still queued are not visible.
func (d *Dispatcher) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEvent, error) {
	return d.ledger.List(ctx, f)
}

// Stop refuses new events, lets the workers drain what is queued and waits
// for them or for ctx, whichever comes first.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.quitOnce.Do(func() { close(d.quit) })

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func shardKey(e domain.AuditEvent) string {
	if e.DeviceID != "" {
		return e.DeviceID
	}
	return "user:" + strconv.Itoa(e.UserID)
}

func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(id int, ch <-chan domain.AuditEvent) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for e := range ch {
		metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))

		start := time.Now()
		err := d.ledger.Insert(context.Background(), e)
		result := "ok"
		if err != nil {
			result = "error"
			metrics.AuditErrorsTotal.WithLabelValues("write_failed").Inc()
			d.log.Error().Err(err).
				Str("event_id", e.ID).
				Str("kind", string(e.Kind)).
				Str("device_id", e.DeviceID).
				Int("worker_id", id).
				Msg("audit write failed")
		}
		metrics.AuditWriteDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	}
}
