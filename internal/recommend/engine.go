package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bidcraft/bidcraft/internal/config"
	"github.com/bidcraft/bidcraft/internal/subcontractor"
)

// Recommendation pairs a candidate with its score and explanation
type Recommendation struct {
	Candidate  subcontractor.Record `json:"subcontractor"`
	Confidence float64              `json:"confidence_score"`
	Reasons    []Reason             `json:"reasons"`
}

// Request describes one recommendation run. MinConfidence and TopN are
// taken literally: a TopN of zero or less yields empty lists, and an
// out-of-range MinConfidence simply filters nothing or everything.
type Request struct {
	Scope         []string
	Location      string
	ProjectType   string
	BidValue      *int64
	MinConfidence float64
	TopN          int
}

// Result maps each requested trade to its ranked recommendations.
// Trades preserves first-seen resolution order; trades with no
// qualifying candidates are still present in ByTrade with an empty
// list, so "no coverage" is distinguishable from "not requested".
type Result struct {
	Trades  []string                    `json:"trades"`
	ByTrade map[string][]Recommendation `json:"by_trade"`
}

// Engine orchestrates trade resolution, candidate filtering, scoring
// and ranking over a read-only record store.
type Engine struct {
	store    *subcontractor.Store
	tradeMap TradeMap
	scorer   *Scorer
}

// NewEngine creates an Engine from configuration. Invalid scoring or
// trade-map configuration fails here, before any recommendation call.
func NewEngine(cfg *config.Config, store *subcontractor.Store) (*Engine, error) {
	if store == nil {
		return nil, errors.New("recommend: store is required")
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	return &Engine{
		store:    store,
		tradeMap: NewTradeMap(cfg.TradeMap),
		scorer:   NewScorer(cfg.Scoring, cfg.Specialty),
	}, nil
}

func validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if len(cfg.TradeMap) == 0 {
		return errors.New("trade map is empty")
	}

	w := cfg.Scoring
	weights := []float64{
		w.TradeWeight, w.LocationWeight, w.RatingWeight,
		w.ExperienceWeight, w.BondingWeight, w.SpecialtyWeight,
	}
	total := 0.0
	for _, v := range weights {
		if v < 0 {
			return fmt.Errorf("negative scoring weight %v", v)
		}
		total += v
	}
	if total <= 0 {
		return errors.New("scoring weights are all zero")
	}
	if w.ExperienceCapYears < 1 {
		return fmt.Errorf("experience cap must be at least 1 year, got %d", w.ExperienceCapYears)
	}

	return nil
}

// TradeMap returns the engine's trade map
func (e *Engine) TradeMap() TradeMap {
	return e.tradeMap
}

// Scorer returns the engine's scorer
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// Recommend produces ranked recommendations per trade for the detected
// scope. Unknown scope keywords are silently ignored.
func (e *Engine) Recommend(req Request) Result {
	trades := e.tradeMap.ResolveAll(req.Scope)

	result := Result{
		Trades:  trades,
		ByTrade: make(map[string][]Recommendation, len(trades)),
	}

	ctx := Context{
		Location:    req.Location,
		ProjectType: req.ProjectType,
		BidValue:    req.BidValue,
	}

	for _, trade := range trades {
		recs := make([]Recommendation, 0)
		for _, candidate := range e.store.ByTrade(trade) {
			eval := e.scorer.Score(candidate, trade, ctx)
			if eval.Confidence < req.MinConfidence {
				continue
			}
			recs = append(recs, Recommendation{
				Candidate:  candidate,
				Confidence: eval.Confidence,
				Reasons:    eval.Reasons,
			})
		}

		// Stable ranking: confidence desc, rating desc, name asc
		sort.Slice(recs, func(i, j int) bool {
			if recs[i].Confidence != recs[j].Confidence {
				return recs[i].Confidence > recs[j].Confidence
			}
			if recs[i].Candidate.Rating != recs[j].Candidate.Rating {
				return recs[i].Candidate.Rating > recs[j].Candidate.Rating
			}
			return recs[i].Candidate.CompanyName < recs[j].Candidate.CompanyName
		})

		topN := req.TopN
		if topN < 0 {
			topN = 0
		}
		if len(recs) > topN {
			recs = recs[:topN]
		}

		result.ByTrade[trade] = recs
	}

	return result
}
