package gesture

import "github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"

// Config tunes the classifier thresholds.
type Config struct {
	// Window is the number of frames of pinch/distance history retained.
	Window int `yaml:"window"`
	// ConfirmFrames is how many consecutive frames a confirmation-required
	// candidate (circle) must persist before committing.
	ConfirmFrames int `yaml:"confirm_frames"`
	// ReleaseFrames is how many consecutive pinch-free frames short-circuit
	// an exit out of compress.
	ReleaseFrames int `yaml:"release_frames"`
	// CircleMin / CircleMax bound the inter-hand distance band that
	// qualifies as the aggregation gesture.
	CircleMin float64 `yaml:"circle_min"`
	CircleMax float64 `yaml:"circle_max"`
	// CollapseDistance is the tight separation below which a collapse
	// qualifies.
	CollapseDistance float64 `yaml:"collapse_distance"`
	// CollapseCooldown is the minimum time between collapse commits.
	CollapseCooldown float64 `yaml:"collapse_cooldown"`
	// ControlMode switches the classifier to the camera-transform family,
	// mutually exclusive with the particle-affecting gestures.
	ControlMode bool `yaml:"control_mode"`
}

// DefaultConfig returns the thresholds tuned for the stock tracker.
func DefaultConfig() Config {
	return Config{
		Window:           10,
		ConfirmFrames:    4,
		ReleaseFrames:    2,
		CircleMin:        5,
		CircleMax:        18,
		CollapseDistance: 4,
		CollapseCooldown: 2.0,
	}
}

// releaseEdgeSpan is how far back the pinch-then-release edge looks.
const releaseEdgeSpan = 4

type frame struct {
	leftPinched  bool
	rightPinched bool
	distance     float64
}

// Classifier commits one gesture per frame from raw per-hand flags.
//
// Compress, Expand and Collapse commit the moment they are the per-frame
// candidate so they feel immediate; Circle must hold for ConfirmFrames
// consecutive frames so single-frame tracking glitches cannot toggle
// aggregation mode. Leaving any committed gesture likewise requires the new
// candidate to reach the confirmation threshold, except the quick
// release-exit out of Compress.
type Classifier struct {
	cfg Config

	window       []frame
	pending      Gesture
	pendingCount int
	committed    Gesture
	committedAt  float64
	lastCollapse float64
	releasedRun  int
}

// NewClassifier returns a classifier with the given thresholds. Zero-valued
// fields fall back to defaults.
func NewClassifier(cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.ConfirmFrames <= 0 {
		cfg.ConfirmFrames = def.ConfirmFrames
	}
	if cfg.ReleaseFrames <= 0 {
		cfg.ReleaseFrames = def.ReleaseFrames
	}
	if cfg.CircleMax <= 0 {
		cfg.CircleMin = def.CircleMin
		cfg.CircleMax = def.CircleMax
	}
	if cfg.CollapseDistance <= 0 {
		cfg.CollapseDistance = def.CollapseDistance
	}
	if cfg.CollapseCooldown <= 0 {
		cfg.CollapseCooldown = def.CollapseCooldown
	}
	return &Classifier{
		cfg:          cfg,
		window:       make([]frame, 0, cfg.Window),
		lastCollapse: -1e9, // sentinel far in the past
	}
}

// Committed returns the currently committed gesture.
func (c *Classifier) Committed() Gesture { return c.committed }

// CommittedAt returns the time of the last commit.
func (c *Classifier) CommittedAt() float64 { return c.committedAt }

// Reset clears the window and pending candidate and forces Idle.
func (c *Classifier) Reset() {
	c.window = c.window[:0]
	c.pending = Idle
	c.pendingCount = 0
	c.committed = Idle
	c.releasedRun = 0
}

// Classify consumes one tracking frame and returns the committed gesture.
// now is the frame timestamp in seconds; it only feeds the collapse cooldown
// and commit bookkeeping, never a blocking wait.
func (c *Classifier) Classify(left, right *hand.Point, distance, now float64) Gesture {
	if left == nil && right == nil {
		c.Reset()
		return c.committed
	}

	c.push(frame{
		leftPinched:  left != nil && left.Pinched,
		rightPinched: right != nil && right.Pinched,
		distance:     distance,
	})

	if c.cfg.ControlMode {
		// Alternate family: both hands present drive the camera transform.
		if left != nil && right != nil {
			c.commit(Control, now)
		} else {
			c.commit(Idle, now)
		}
		return c.committed
	}

	candidate := c.candidate(left, right, distance)

	anyPinch := (left != nil && left.Pinched) || (right != nil && right.Pinched)
	if anyPinch {
		c.releasedRun = 0
	} else {
		c.releasedRun++
	}

	switch candidate {
	case Compress, Expand:
		c.commit(candidate, now)
	case Collapse:
		if now-c.lastCollapse >= c.cfg.CollapseCooldown {
			c.commit(Collapse, now)
			c.lastCollapse = now
		}
	default:
		c.confirm(candidate, now)
	}

	return c.committed
}

// candidate evaluates the per-frame decision rules in order; first match
// wins.
func (c *Classifier) candidate(left, right *hand.Point, distance float64) Gesture {
	if left != nil && right != nil {
		switch {
		case left.Pinched || right.Pinched:
			return Compress
		case left.Open && right.Open && c.releaseEdge():
			return Expand
		case left.Open && right.Open &&
			distance > c.cfg.CircleMin && distance < c.cfg.CircleMax:
			return Circle
		case distance < c.cfg.CollapseDistance:
			return Collapse
		default:
			return Idle
		}
	}

	only := left
	if only == nil {
		only = right
	}
	if only.Pinched {
		return Compress
	}
	return Idle
}

// releaseEdge detects a pinch-then-release over the last few frames: a pinch
// in the oldest of the span with both hands released by the newest.
func (c *Classifier) releaseEdge() bool {
	if len(c.window) < releaseEdgeSpan {
		return false
	}
	oldest := c.window[len(c.window)-releaseEdgeSpan]
	newest := c.window[len(c.window)-1]
	wasPinched := oldest.leftPinched || oldest.rightPinched
	released := !newest.leftPinched && !newest.rightPinched
	return wasPinched && released
}

// confirm applies the debounce policy for confirmation-required candidates.
func (c *Classifier) confirm(candidate Gesture, now float64) {
	if candidate == c.committed {
		c.pending = candidate
		c.pendingCount = 0
		return
	}

	if candidate == c.pending {
		c.pendingCount++
	} else {
		c.pending = candidate
		c.pendingCount = 1
	}

	// Quick exit from compress once the pinch has been released a couple of
	// frames, so release feels responsive.
	if c.committed == Compress && c.releasedRun >= c.cfg.ReleaseFrames &&
		(candidate == Idle || candidate == Expand) {
		c.commit(candidate, now)
		return
	}

	if c.pendingCount >= c.cfg.ConfirmFrames {
		c.commit(candidate, now)
	}
}

func (c *Classifier) commit(g Gesture, now float64) {
	if g != c.committed {
		c.committed = g
		c.committedAt = now
	}
	c.pending = g
	c.pendingCount = 0
}

func (c *Classifier) push(f frame) {
	if len(c.window) == c.cfg.Window {
		copy(c.window, c.window[1:])
		c.window[len(c.window)-1] = f
	} else {
		c.window = append(c.window, f)
	}
}
