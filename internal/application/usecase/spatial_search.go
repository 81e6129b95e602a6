package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// Default spatial scoring parameters.
const (
	DefaultAlignTolerance  = 10.0  // px of center noise tolerated on the main axis
	DefaultCrossAxisWeight = 3.0   // cross-axis distance multiplier
	DefaultAlignmentBonus  = 100.0 // score subtracted for full cross-axis overlap
)

// SearchTuning holds the weights of the spatial scoring function.
type SearchTuning struct {
	AlignTolerance  float64
	CrossAxisWeight float64
	AlignmentBonus  float64
}

// DefaultSearchTuning returns the default weights.
func DefaultSearchTuning() SearchTuning {
	return SearchTuning{
		AlignTolerance:  DefaultAlignTolerance,
		CrossAxisWeight: DefaultCrossAxisWeight,
		AlignmentBonus:  DefaultAlignmentBonus,
	}
}

// FindNextInput contains data for spatial focus navigation.
type FindNextInput struct {
	Current    entity.TargetID    // Empty when nothing is focused
	Direction  entity.Direction
	Candidates []entity.Candidate // Eligible targets with fresh geometry
	Loop       bool               // Fall back to cyclic order when nothing lies in Direction
}

// FindNextOutput contains the result.
type FindNextOutput struct {
	Target    entity.Candidate
	Found     bool
	ColdStart bool // Current was missing or stale; Target is the first candidate
	Wrapped   bool // Target was picked by cyclic fallback
}

// SpatialSearchUseCase picks the next focus target by geometry.
type SpatialSearchUseCase struct {
	mu     sync.RWMutex
	tuning SearchTuning
}

// NewSpatialSearchUseCase creates a spatial search with the given weights.
func NewSpatialSearchUseCase(tuning SearchTuning) *SpatialSearchUseCase {
	return &SpatialSearchUseCase{tuning: tuning}
}

// SetTuning replaces the scoring weights (used on config reload).
func (uc *SpatialSearchUseCase) SetTuning(tuning SearchTuning) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.tuning = tuning
}

// Tuning returns the current scoring weights.
func (uc *SpatialSearchUseCase) Tuning() SearchTuning {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.tuning
}

// FindNext finds the best candidate in the given direction from the current target.
// Algorithm:
//  1. Current missing from candidates: return the first candidate (cold start)
//  2. Drop candidates whose center is not beyond the current center (minus tolerance)
//  3. Score by: sqrt(main² + (weight*cross)²) - bonus*overlap_fraction
//  4. Return the lowest score; first seen wins ties
//
// An error is only returned for an invalid direction.
func (uc *SpatialSearchUseCase) FindNext(ctx context.Context, input FindNextInput) (*FindNextOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("spatial search use case is nil")
	}
	if !input.Direction.Valid() {
		return nil, fmt.Errorf("invalid direction %q", input.Direction)
	}
	if len(input.Candidates) == 0 {
		return &FindNextOutput{Found: false}, nil
	}

	currentIdx := indexOfCandidate(input.Candidates, input.Current)
	if currentIdx < 0 {
		log.Debug().
			Str("current", string(input.Current)).
			Str("target", string(input.Candidates[0].ID)).
			Msg("current target not found, cold start")
		return &FindNextOutput{Target: input.Candidates[0], Found: true, ColdStart: true}, nil
	}

	tuning := uc.Tuning()
	current := input.Candidates[currentIdx]

	bestIdx := -1
	bestScore := math.Inf(1)
	for i, cand := range input.Candidates {
		if i == currentIdx {
			continue
		}
		score, eligible := scoreCandidate(current.Rect, cand.Rect, input.Direction, tuning)
		if !eligible {
			continue
		}
		if score < bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 {
		log.Debug().
			Str("direction", string(input.Direction)).
			Str("from", string(current.ID)).
			Str("target", string(input.Candidates[bestIdx].ID)).
			Float64("score", bestScore).
			Int("candidates", len(input.Candidates)).
			Msg("spatial search found target")
		return &FindNextOutput{Target: input.Candidates[bestIdx], Found: true}, nil
	}

	if input.Loop && len(input.Candidates) > 1 {
		next := cyclicIndex(currentIdx, len(input.Candidates), input.Direction)
		log.Debug().
			Str("direction", string(input.Direction)).
			Str("target", string(input.Candidates[next].ID)).
			Msg("no candidate in direction, wrapping")
		return &FindNextOutput{Target: input.Candidates[next], Found: true, Wrapped: true}, nil
	}

	log.Debug().Str("direction", string(input.Direction)).Msg("no candidates in direction")
	return &FindNextOutput{Found: false}, nil
}

// scoreCandidate returns the score of rect as a move target from current, and
// whether it lies in the requested direction at all.
func scoreCandidate(current, rect entity.Rect, direction entity.Direction, tuning SearchTuning) (float64, bool) {
	acx, acy := current.Center()
	cx, cy := rect.Center()
	dx := cx - acx
	dy := cy - acy

	var inDirection bool
	switch direction {
	case entity.DirUp:
		inDirection = dy < -tuning.AlignTolerance
	case entity.DirDown:
		inDirection = dy > tuning.AlignTolerance
	case entity.DirLeft:
		inDirection = dx < -tuning.AlignTolerance
	case entity.DirRight:
		inDirection = dx > tuning.AlignTolerance
	}
	if !inDirection {
		return 0, false
	}

	var mainDist, crossDist, overlapFrac float64
	if direction.Axis() == entity.AxisVertical {
		mainDist, crossDist = math.Abs(dy), math.Abs(dx)
		overlapFrac = overlapFraction(current.OverlapX(rect), current.W, rect.W)
	} else {
		mainDist, crossDist = math.Abs(dx), math.Abs(dy)
		overlapFrac = overlapFraction(current.OverlapY(rect), current.H, rect.H)
	}

	weightedCross := crossDist * tuning.CrossAxisWeight
	distance := math.Sqrt(mainDist*mainDist + weightedCross*weightedCross)

	return distance - tuning.AlignmentBonus*overlapFrac, true
}

// overlapFraction returns overlap relative to the smaller extent, in [0, 1].
func overlapFraction(overlap, extentA, extentB float64) float64 {
	smaller := min(extentA, extentB)
	if overlap <= 0 || smaller <= 0 {
		return 0
	}
	return min(overlap/smaller, 1)
}

// cyclicIndex advances idx by one in list order, wrapping at both ends.
func cyclicIndex(idx, count int, direction entity.Direction) int {
	if direction.Forward() {
		return (idx + 1) % count
	}
	return (idx - 1 + count) % count
}

func indexOfCandidate(candidates []entity.Candidate, id entity.TargetID) int {
	if id == "" {
		return -1
	}
	for i := range candidates {
		if candidates[i].ID == id {
			return i
		}
	}
	return -1
}
