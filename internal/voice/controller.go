package voice

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Status describes the lifecycle of a Controller.
type Status int

const (
	StatusIdle        Status = iota // Not started
	StatusListening                 // Source is streaming
	StatusUnavailable               // Source failed to open or died
	StatusStopped                   // Source finished or context cancelled
)

// String returns a short label for HUD display.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusListening:
		return "listening"
	case StatusUnavailable:
		return "unavailable"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options configures a Controller.
type Options struct {
	WindowSize int // Samples measured per reading (default 128)
	BufferSize int // Samples between readings (default 512)
	Backlog    int // Readings buffered for the consumer (default 64)
	Logger     *log.Logger
	Now        func() time.Time
}

// Controller runs an audio Source on its own goroutine and publishes one
// Reading per buffer. The game loop drains Readings once per frame, so all
// control changes are applied on the loop's goroutine.
type Controller struct {
	src      Source
	analyser *Analyser
	readings chan Reading
	logger   *log.Logger
	now      func() time.Time

	mu      sync.Mutex
	status  Status
	err     error
	last    float64
	dropped int
}

// NewController creates a controller for src.
func NewController(src Source, opts Options) *Controller {
	if opts.WindowSize <= 0 {
		opts.WindowSize = 128
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 512
	}
	if opts.Backlog <= 0 {
		opts.Backlog = 64
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Controller{
		src:      src,
		analyser: NewAnalyser(opts.WindowSize, opts.BufferSize),
		readings: make(chan Reading, opts.Backlog),
		logger:   opts.Logger,
		now:      opts.Now,
	}
}

// Readings returns the channel readings are published on.
// It is closed when the source stops for any reason.
func (c *Controller) Readings() <-chan Reading {
	return c.readings
}

// Start launches the source. It returns immediately; failures to open the
// device surface through Status and the log, never to the caller, so the
// game keeps running without voice control.
func (c *Controller) Start(ctx context.Context) {
	c.setStatus(StatusListening, nil)
	go c.run(ctx)
}

// run streams until the source returns.
func (c *Controller) run(ctx context.Context) {
	defer close(c.readings)

	if c.src == nil {
		c.fail(ErrNoSource)
		return
	}

	c.logger.Info("voice control starting", "source", c.src.Name())
	err := c.src.Stream(ctx, c.process)

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		c.setStatus(StatusStopped, nil)
		c.logger.Info("voice control stopped", "source", c.src.Name(), "dropped", c.Dropped())
	default:
		c.fail(err)
	}
}

// process turns a chunk of samples into readings.
func (c *Controller) process(samples []float32) {
	for _, v := range c.analyser.Write(samples) {
		c.mu.Lock()
		c.last = v
		c.mu.Unlock()
		c.publish(Reading{Volume: v, At: c.now()})
	}
}

// publish sends without blocking the audio goroutine. When the consumer
// falls behind, the oldest reading is discarded.
func (c *Controller) publish(r Reading) {
	for {
		select {
		case c.readings <- r:
			return
		default:
		}
		select {
		case <-c.readings:
			c.mu.Lock()
			c.dropped++
			c.mu.Unlock()
		default:
		}
	}
}

func (c *Controller) fail(err error) {
	c.setStatus(StatusUnavailable, err)
	c.logger.Warn("voice control unavailable, continuing without it", "error", err)
}

func (c *Controller) setStatus(s Status, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = s
	c.err = err
}

// Status returns the current status and, when unavailable, the cause.
func (c *Controller) Status() (Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.err
}

// Level returns the most recent volume.
func (c *Controller) Level() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Dropped returns how many readings were discarded because nobody read them.
func (c *Controller) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}
