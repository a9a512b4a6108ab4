package scoring

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MikeSquared-Agency/cers/internal/store"
)

// ScoredRegion is a region with its derived score and readiness. It is never persisted.
type ScoredRegion struct {
	store.Region `yaml:",inline"`
	CERS         float64   `json:"CERS" yaml:"cers"`
	Readiness    Readiness `json:"readiness" yaml:"readiness"`
}

// RawScore computes the unrounded weighted sum in exact decimal arithmetic.
//
//	CERS = P*0.35 + G*0.25 + R*0.25 + H*0.15
func RawScore(r store.Region) decimal.Decimal {
	w := DefaultWeights()
	return decimal.NewFromFloat(r.P).Mul(w.RenewablePotential).
		Add(decimal.NewFromFloat(r.G).Mul(w.GridAccess)).
		Add(decimal.NewFromFloat(r.R).Mul(w.Regulatory)).
		Add(decimal.NewFromFloat(r.H).Mul(w.Implementation))
}

// Score returns the CERS for r rounded half away from zero to one decimal place.
// Indicators are not validated; out-of-range values propagate arithmetically.
func Score(r store.Region) float64 {
	f, _ := RawScore(r).Round(1).Float64()
	return f
}

// ScoreRegion scores and classifies a single region.
func ScoreRegion(r store.Region) ScoredRegion {
	cers := Score(r)
	return ScoredRegion{
		Region:    r,
		CERS:      cers,
		Readiness: Classify(cers),
	}
}

// Rank scores every region and orders them by CERS descending.
// Ties keep their input order. The 1-based rank is the index in the result plus one.
func Rank(regions []store.Region) []ScoredRegion {
	out := make([]ScoredRegion, len(regions))
	for i, r := range regions {
		out[i] = ScoreRegion(r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CERS > out[j].CERS
	})
	return out
}

// Engine serves ranked results for an immutable region store.
// The ranking is computed once on first use.
type Engine struct {
	store  store.Store
	logger *slog.Logger

	once   sync.Once
	ranked []ScoredRegion
}

// NewEngine creates an Engine over the given store.
func NewEngine(s store.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: s, logger: logger}
}

// Ranked returns a copy of the ranked region list.
func (e *Engine) Ranked() []ScoredRegion {
	e.once.Do(func() {
		e.ranked = Rank(e.store.ListRegions())
		e.logger.Debug("ranked regions", "count", len(e.ranked))
	})
	out := make([]ScoredRegion, len(e.ranked))
	copy(out, e.ranked)
	return out
}

// Lookup returns the scored region with the given name and its 1-based rank.
func (e *Engine) Lookup(name string) (ScoredRegion, int, error) {
	r, err := e.store.GetRegion(name)
	if err != nil {
		return ScoredRegion{}, 0, err
	}
	for i, sr := range e.Ranked() {
		if sr.Name == r.Name {
			return sr, i + 1, nil
		}
	}
	return ScoredRegion{}, 0, fmt.Errorf("%w: %s", store.ErrRegionNotFound, name)
}

// Select resolves names to scored regions, keeping the order given.
func (e *Engine) Select(names []string) ([]ScoredRegion, error) {
	out := make([]ScoredRegion, 0, len(names))
	for _, name := range names {
		sr, _, err := e.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, nil
}

// Summary counts the ranked regions per tier.
func (e *Engine) Summary() Summary {
	return Summarize(e.Ranked())
}

// Chart returns bar-chart rows in ranked order.
func (e *Engine) Chart() []ChartRow {
	return ChartRows(e.Ranked())
}
