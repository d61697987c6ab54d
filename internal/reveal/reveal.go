package reveal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/logger"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

// ErrDriverClosed is returned by Play after Shutdown
var ErrDriverClosed = errors.New("reveal driver closed")

// Delays between consecutive frames
type Delays struct {
	Reel1 time.Duration // initial spin to reel 1
	Reel3 time.Duration // reel 1 to reel 3
	Reel2 time.Duration // reel 3 to reel 2
}

// DefaultDelays returns the built-in reveal pacing
func DefaultDelays() Delays {
	return Delays{
		Reel1: DefaultReel1Delay,
		Reel3: DefaultReel3Delay,
		Reel2: DefaultReel2Delay,
	}
}

// Total is the time from the first to the last frame
func (d Delays) Total() time.Duration {
	return d.Reel1 + d.Reel3 + d.Reel2
}

// Reveal is a resolved spin waiting to be shown
type Reveal struct {
	SpinID     string
	EventIndex int64 // ledger position; 0 when unknown
	Reels      domain.ReelCombination
	Message    string
}

// FromOutcome builds a Reveal for an applied outcome
func FromOutcome(o domain.SpinOutcome) Reveal {
	return Reveal{
		SpinID:     o.SpinID,
		EventIndex: o.EventIndex,
		Reels:      o.Combination,
		Message:    slots.FormatSpinMessage(o),
	}
}

// Frame is one display state of the reels
type Frame struct {
	SpinID  string                 `json:"spin_id"`
	Phase   Phase                  `json:"phase"`
	Reels   domain.ReelCombination `json:"reels"`
	Message string                 `json:"message,omitempty"`
}

// Step is a frame and the wait before it is shown
type Step struct {
	Wait  time.Duration
	Frame Frame
}

// Schedule lays out the frames for r: reel 1 first, then reel 3, then reel 2.
// The result message rides on the reel 2 frame and the idle frame follows at once.
func Schedule(r Reveal, d Delays) []Step {
	spinning := domain.SymbolSpinning
	final := r.Reels
	return []Step{
		{0, Frame{r.SpinID, PhaseInitialSpin, domain.SpinningReels, MsgSpinning}},
		{d.Reel1, Frame{r.SpinID, PhaseRevealReel1, domain.ReelCombination{final[0], spinning, spinning}, ""}},
		{d.Reel3, Frame{r.SpinID, PhaseRevealReel3, domain.ReelCombination{final[0], spinning, final[2]}, ""}},
		{d.Reel2, Frame{r.SpinID, PhaseRevealReel2, final, r.Message}},
		{0, Frame{r.SpinID, PhaseIdle, final, r.Message}},
	}
}

// Sink receives frames as they become due
type Sink func(ctx context.Context, f Frame)

// PublisherSink forwards frames to an event publisher
func PublisherSink(p event.Publisher) Sink {
	return func(ctx context.Context, f Frame) {
		evt := event.NewRevealFrameEvent(f.SpinID, string(f.Phase), f.Reels, f.Message)
		if err := p.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(event.LogMsgPublishFailed, "event_type", evt.Type, "error", err)
		}
	}
}

// Driver plays reveals on timers. It only ever displays outcomes that were
// already applied, so cancelling a reveal never affects balances.
type Driver struct {
	delays   Delays
	sink     Sink
	mu       sync.Mutex
	active   map[string]context.CancelFunc
	latest   int64 // highest EventIndex started
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

// NewDriver creates a Driver emitting frames to sink
func NewDriver(delays Delays, sink Sink) *Driver {
	return &Driver{
		delays:   delays,
		sink:     sink,
		active:   make(map[string]context.CancelFunc),
		shutdown: make(chan struct{}),
	}
}

// Delays returns the driver's pacing
func (d *Driver) Delays() Delays {
	return d.delays
}

// Subscribe plays a reveal for every resolved spin on the bus
func (d *Driver) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SpinResolved, d.handleSpinResolved)
}

func (d *Driver) handleSpinResolved(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.SpinResolvedPayloadV1](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "error", err)
		return nil
	}
	d.Start(ctx, Reveal{
		SpinID:     payload.SpinID,
		EventIndex: payload.EventIndex,
		Reels:      payload.Combination,
		Message:    slots.FormatWinMessage(payload.Prize, payload.RuleName),
	})
	return nil
}

// Start plays r on a tracked goroutine. A newer spin supersedes any reveal still running.
// Spins resolved concurrently can arrive out of ledger order, so a reveal whose EventIndex
// is below one already started is dropped.
// The caller's context only contributes request-scoped values, not cancellation.
func (d *Driver) Start(ctx context.Context, r Reveal) {
	log := logger.FromContext(ctx)
	playCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		cancel()
		log.Debug(LogMsgDriverClosed, "spin_id", r.SpinID)
		return
	}
	if r.EventIndex > 0 {
		if latest := d.latest; r.EventIndex < latest {
			d.mu.Unlock()
			cancel()
			log.Debug(LogMsgRevealStale, "spin_id", r.SpinID, "event_index", r.EventIndex, "latest", latest)
			return
		}
		d.latest = r.EventIndex
	}
	for id, stop := range d.active {
		stop()
		delete(d.active, id)
		log.Debug(LogMsgRevealSuperseded, "spin_id", id, "by", r.SpinID)
	}
	d.active[r.SpinID] = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer d.release(r.SpinID)
		if err := d.Play(playCtx, r); err != nil {
			log.Debug(LogMsgRevealCancelled, "spin_id", r.SpinID, "error", err)
		}
	}()
}

func (d *Driver) release(spinID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cancel, ok := d.active[spinID]; ok {
		cancel()
		delete(d.active, spinID)
	}
}

// Play emits r's frames on the calling goroutine, waiting between them.
// It returns ctx's error if cancelled mid-reveal, or ErrDriverClosed after Shutdown.
func (d *Driver) Play(ctx context.Context, r Reveal) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgRevealStarted, "spin_id", r.SpinID)

	for _, step := range Schedule(r, d.delays) {
		if step.Wait > 0 {
			timer := time.NewTimer(step.Wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-d.shutdown:
				timer.Stop()
				return ErrDriverClosed
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		d.sink(ctx, step.Frame)
	}

	log.Debug(LogMsgRevealFinished, "spin_id", r.SpinID)
	return nil
}

// Active reports how many reveals are running
func (d *Driver) Active() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.active)
}

// CheckHealth reports the driver as unavailable once shutdown has begun
func (d *Driver) CheckHealth(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDriverClosed
	}
	return nil
}

// Shutdown stops pending reveals and waits for their goroutines to exit
func (d *Driver) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.shutdown)
	}
	for id, cancel := range d.active {
		cancel()
		delete(d.active, id)
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
