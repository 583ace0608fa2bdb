package life

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/mini-life/internal/dialogue"
	"github.com/talgya/mini-life/internal/economy"
	"github.com/talgya/mini-life/internal/entropy"
	"github.com/talgya/mini-life/internal/person"
)

// Sim wires the engines together: one entropy source, one ID
// generator, one chat engine, one market stream. Snapshots go in,
// snapshots come out; the Sim itself holds no per-life state.
type Sim struct {
	rng    entropy.Source
	id     person.IDGen
	gen    *person.Generator
	chat   *dialogue.Engine
	market *economy.Market
	logger *slog.Logger

	// baseYear anchors YearBorn for new characters.
	baseYear int
}

// Options configures a Sim.
type Options struct {
	Source   entropy.Source
	IDGen    person.IDGen
	Market   *economy.Market
	Logger   *slog.Logger
	BaseYear int
}

// NewSim builds a Sim. Nil options fall back to crypto entropy, UUID
// IDs, a zero-seeded market, and a discarded logger.
func NewSim(opts Options) *Sim {
	src := opts.Source
	if src == nil {
		src = entropy.Crypto{}
	}
	idgen := opts.IDGen
	if idgen == nil {
		idgen = uuid.NewString
	}
	market := opts.Market
	if market == nil {
		market = economy.NewMarket(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	baseYear := opts.BaseYear
	if baseYear == 0 {
		baseYear = 2025
	}
	return &Sim{
		rng:      src,
		id:       idgen,
		gen:      person.NewGenerator(src, idgen),
		chat:     dialogue.NewEngine(src),
		market:   market,
		logger:   logger,
		baseYear: baseYear,
	}
}

func (s *Sim) between(lo, hi int) int    { return entropy.Between(s.rng, lo, hi) }
func (s *Sim) chance(p float64) bool     { return entropy.Chance(s.rng, p) }
func (s *Sim) pick(pool []string) string { return entropy.Pick(s.rng, pool) }
