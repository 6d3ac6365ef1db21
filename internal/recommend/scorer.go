package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/bidcraft/bidcraft/internal/config"
	"github.com/bidcraft/bidcraft/internal/subcontractor"
)

// ReasonKind tags a match reason as positive or cautionary
type ReasonKind string

const (
	ReasonPositive ReasonKind = "positive"
	ReasonCaution  ReasonKind = "caution"
)

// Reason is a single structured entry in a score explanation.
// Codes are stable so callers (UI, export) can filter or localize
// without parsing the detail text.
type Reason struct {
	Kind   ReasonKind `json:"kind"`
	Code   string     `json:"code"`
	Detail string     `json:"detail"`
}

// Evaluation is the result of scoring one candidate for one trade
type Evaluation struct {
	Confidence float64  `json:"confidence"`
	Reasons    []Reason `json:"reasons"`
}

// Positives returns only the positive reasons
func (e Evaluation) Positives() []Reason {
	return e.filter(ReasonPositive)
}

// Cautions returns only the caution reasons
func (e Evaluation) Cautions() []Reason {
	return e.filter(ReasonCaution)
}

func (e Evaluation) filter(kind ReasonKind) []Reason {
	var out []Reason
	for _, r := range e.Reasons {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Context carries optional project information for scoring.
// Empty Location/ProjectType and nil BidValue mean the corresponding
// component is simply not evaluated against project context.
type Context struct {
	Location    string
	ProjectType string
	BidValue    *int64
}

// Scorer computes weighted 0-100 confidence scores
type Scorer struct {
	weights   config.ScoringConfig
	specialty []config.SpecialtyGroup
}

// NewScorer creates a Scorer with the given weights and specialty
// keyword groups.
func NewScorer(weights config.ScoringConfig, specialty []config.SpecialtyGroup) *Scorer {
	return &Scorer{weights: weights, specialty: specialty}
}

// Score evaluates a candidate for a trade under the given project
// context. Components are computed independently and summed; reasons
// are emitted in a fixed order (trade, location, rating, experience,
// bonding, specialty) so output is deterministic.
func (s *Scorer) Score(candidate subcontractor.Record, tradeCategory string, ctx Context) Evaluation {
	w := s.weights
	score := 0.0
	var reasons []Reason

	// Trade match. Candidates arrive pre-filtered by trade, but the
	// check is repeated here so the scorer stands alone.
	if candidate.TradeCategory == strings.ToLower(strings.TrimSpace(tradeCategory)) {
		score += w.TradeWeight
		reasons = append(reasons, positive("trade_match", "exact trade match"))
	}

	// Location: exact service-area membership, no geospatial logic
	if ctx.Location != "" {
		location := strings.ToLower(strings.TrimSpace(ctx.Location))
		if candidate.ServesArea(location) {
			score += w.LocationWeight
			reasons = append(reasons, positive("location_match", fmt.Sprintf("services %s", location)))
		} else {
			detail := fmt.Sprintf("does not list %s", location)
			if len(candidate.ServiceAreas) > 0 {
				detail += fmt.Sprintf(" (service areas: %s)", strings.Join(candidate.ServiceAreas, ", "))
			}
			reasons = append(reasons, caution("location_miss", detail))
		}
	}

	// Rating: linear 0-5 scale
	ratingScore := clamp(w.RatingWeight*(candidate.Rating/5.0), 0, w.RatingWeight)
	score += ratingScore
	switch {
	case candidate.Rating >= 4.5:
		reasons = append(reasons, positive("rating_high", fmt.Sprintf("rated %.1f/5.0", candidate.Rating)))
	case candidate.Rating < 3.0:
		reasons = append(reasons, caution("rating_low", fmt.Sprintf("rated %.1f/5.0", candidate.Rating)))
	}

	// Experience: linear, capped
	capYears := w.ExperienceCapYears
	years := candidate.YearsExperience
	if years > capYears {
		years = capYears
	}
	score += w.ExperienceWeight * float64(years) / float64(capYears)
	if candidate.YearsExperience >= 10 {
		reasons = append(reasons, positive("experienced", fmt.Sprintf("%d years experience", candidate.YearsExperience)))
	}

	// Bonding: full credit without a bid value to compare against.
	// A bid value of zero counts as fully bonded rather than dividing.
	if ctx.BidValue != nil {
		bid := *ctx.BidValue
		if bid <= 0 || candidate.BondingCapacity >= bid {
			score += w.BondingWeight
			reasons = append(reasons, positive("bonding_ok",
				fmt.Sprintf("bonding capacity $%d covers the bid", candidate.BondingCapacity)))
		} else {
			score += clamp(w.BondingWeight*float64(candidate.BondingCapacity)/float64(bid), 0, w.BondingWeight)
			reasons = append(reasons, caution("bonding_short",
				fmt.Sprintf("bonding capacity $%d is below the $%d bid value", candidate.BondingCapacity, bid)))
		}
	} else {
		score += w.BondingWeight
	}

	// Specialty: unmatched project types are unscored, not cautioned
	if ctx.ProjectType != "" && s.matchesSpecialty(candidate, ctx.ProjectType) {
		score += w.SpecialtyWeight
		reasons = append(reasons, positive("specialty_match",
			fmt.Sprintf("specializes in %s", strings.ToLower(strings.TrimSpace(ctx.ProjectType)))))
	}

	return Evaluation{
		Confidence: clamp(math.Round(score*10)/10, 0, 100),
		Reasons:    reasons,
	}
}

// matchesSpecialty checks the project type against the candidate's
// specialties, directly and through the configured keyword groups
// (e.g. "Medical Office" matches a "healthcare" specialty via the
// medical group).
func (s *Scorer) matchesSpecialty(candidate subcontractor.Record, projectType string) bool {
	projectLower := strings.ToLower(strings.TrimSpace(projectType))

	if candidate.HasSpecialty(projectLower) {
		return true
	}

	for _, group := range s.specialty {
		if !anyKeywordIn(projectLower, group.Keywords) {
			continue
		}
		for _, kw := range group.Keywords {
			if candidate.HasSpecialty(kw) {
				return true
			}
		}
	}

	return false
}

func anyKeywordIn(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func positive(code, detail string) Reason {
	return Reason{Kind: ReasonPositive, Code: code, Detail: detail}
}

func caution(code, detail string) Reason {
	return Reason{Kind: ReasonCaution, Code: code, Detail: detail}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
