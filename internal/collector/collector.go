package collector

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-collector/internal/weather"
)

// State of the collector loop.
type State string

const (
	StateWarmup  State = "warmup"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// Fetcher produces the current reading. It never fails; provenance says
// whether the reading is live or synthetic.
type Fetcher interface {
	Fetch(ctx context.Context) (weather.Reading, weather.Provenance)
}

// PointWriter persists one reading per call.
type PointWriter interface {
	Write(ctx context.Context, r weather.Reading) error
}

// Status is a snapshot of the loop's progress, served by the status API.
type Status struct {
	State          State              `json:"state"`
	Cycles         uint64             `json:"cycles"`
	LastRun        time.Time          `json:"lastRun,omitempty"`
	LastReading    weather.Reading    `json:"lastReading"`
	LastSource     weather.Provenance `json:"lastSource,omitempty"`
	LastWriteOK    bool               `json:"lastWriteOk"`
	LastWriteError string             `json:"lastWriteError,omitempty"`
}

// Collector runs the fetch-then-write cycle: once after the warm-up delay,
// then on a fixed interval. Cycles are single-flight: a tick that fires while
// the previous cycle is still running is skipped, never overlapped.
type Collector struct {
	scheduler    *gocron.Scheduler
	fetcher      Fetcher
	writer       PointWriter
	interval     time.Duration
	warmup       time.Duration
	cycleTimeout time.Duration

	mu     sync.RWMutex
	status Status
}

// New creates a Collector. interval must be positive; warmup may be zero.
func New(fetcher Fetcher, writer PointWriter, interval, warmup time.Duration) *Collector {
	return &Collector{
		scheduler:    gocron.NewScheduler(time.UTC),
		fetcher:      fetcher,
		writer:       writer,
		interval:     interval,
		warmup:       warmup,
		cycleTimeout: 30 * time.Second,
		status:       Status{State: StateWarmup},
	}
}

// Start registers the periodic job and starts the underlying scheduler.
// The first cycle runs after the warm-up delay; the wait is unconditional,
// not a readiness probe.
func (c *Collector) Start() error {
	job := c.scheduler.Every(c.interval).SingletonMode()
	if c.warmup > 0 {
		job = job.StartAt(time.Now().Add(c.warmup))
	} else {
		job = job.StartImmediately()
	}

	if _, err := job.Do(c.runCycle); err != nil {
		return err
	}

	c.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler. A cycle in progress is not awaited; shutdown is
// best-effort.
func (c *Collector) Stop() {
	c.scheduler.Stop()

	c.mu.Lock()
	c.status.State = StateStopped
	c.mu.Unlock()
}

// Snapshot returns the current loop status.
func (c *Collector) Snapshot() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// runCycle performs one fetch-then-write cycle. A write failure is logged and
// recorded but never aborts the loop; the next tick runs regardless.
func (c *Collector) runCycle() {
	ctx, cancel := context.WithTimeout(context.Background(), c.cycleTimeout)
	defer cancel()

	reading, source := c.fetcher.Fetch(ctx)

	writeErr := c.writer.Write(ctx, reading)
	if writeErr != nil {
		log.Printf("collector: write failed (%s data): %v", source, writeErr)
	}

	c.mu.Lock()
	c.status.State = StateRunning
	c.status.Cycles++
	c.status.LastRun = time.Now().UTC()
	c.status.LastReading = reading
	c.status.LastSource = source
	c.status.LastWriteOK = writeErr == nil
	if writeErr != nil {
		c.status.LastWriteError = writeErr.Error()
	} else {
		c.status.LastWriteError = ""
	}
	c.mu.Unlock()
}
