package interact

import (
	"context"
	"log/slog"

	"vecerka/internal/spatial"
	"vecerka/internal/telemetry"
)

// Default scanner tuning.
const (
	DefaultRadius        = 0.5
	DefaultMaxCandidates = 3
)

// Region is the spatial query the scanner polls. It writes at most len(out)
// interactables found within radius of center on the mask layers and
// returns the count.
type Region interface {
	Candidates(center spatial.Vec2, radius float64, mask spatial.Layer, out []Interactable) int
}

// ScannerConfig tunes a Scanner.
type ScannerConfig struct {
	Radius        float64
	MaxCandidates int
	Mask          spatial.Layer
}

// Scanner finds, once per tick, the interactable in front of its owner.
// The first candidate the region returns is the current one; candidates are
// not sorted by distance, so ties follow the region's enumeration order.
type Scanner struct {
	owner   Interactor
	region  Region
	radius  float64
	mask    spatial.Layer
	buf     []Interactable
	found   int
	current Interactable
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewScanner creates a scanner acting on behalf of owner.
func NewScanner(owner Interactor, region Region, cfg ScannerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Scanner {
	if cfg.Radius <= 0 {
		cfg.Radius = DefaultRadius
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = DefaultMaxCandidates
	}
	if cfg.Mask == 0 {
		cfg.Mask = spatial.LayerInteractable
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		owner:   owner,
		region:  region,
		radius:  cfg.Radius,
		mask:    cfg.Mask,
		buf:     make([]Interactable, cfg.MaxCandidates),
		metrics: metrics,
		logger:  logger,
	}
}

// Scan replaces the previous tick's candidate with a fresh query around
// center.
func (s *Scanner) Scan(center spatial.Vec2) {
	clear(s.buf)
	s.found = s.region.Candidates(center, s.radius, s.mask, s.buf)
	s.current = nil
	if s.found > 0 {
		s.current = s.buf[0]
	}
}

// InteractableObject returns this tick's candidate, or nil when nothing is
// in range.
func (s *Scanner) InteractableObject() Interactable { return s.current }

// Found returns how many candidates the last scan returned.
func (s *Scanner) Found() int { return s.found }

// Prompt returns the primary label of the current candidate, or "".
func (s *Scanner) Prompt() string {
	if s.current == nil {
		return ""
	}
	return s.current.Descriptor().Label(Primary)
}

// TryInteract invokes the current candidate when triggerPressed is set and
// reports whether the interaction took effect.
func (s *Scanner) TryInteract(triggerPressed bool) bool {
	if s.current == nil || !triggerPressed {
		return false
	}
	d := s.current.Descriptor()
	ok := s.current.Interact(s.owner)
	s.logger.Debug("interact", "kind", d.Kind, "prompt", d.Prompt, "ok", ok)
	s.metrics.RecordInteraction(context.Background(), d.Kind, ok)
	return ok
}
