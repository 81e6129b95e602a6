package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/domain/entity"
)

func cand(id string, x, y, w, h float64) entity.Candidate {
	return entity.Candidate{ID: entity.TargetID(id), Rect: entity.Rect{X: x, Y: y, W: w, H: h}}
}

// gridCandidates lays out 2 rows x 3 columns of 100x50 cells with 20px gaps.
// IDs are "r<row>c<col>", 1-based.
func gridCandidates() []entity.Candidate {
	var out []entity.Candidate
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			id := fmt.Sprintf("r%dc%d", row+1, col+1)
			out = append(out, cand(id, float64(col)*120, float64(row)*80, 100, 50))
		}
	}
	return out
}

func findNext(t *testing.T, current string, dir entity.Direction, cands []entity.Candidate) *FindNextOutput {
	t.Helper()
	uc := NewSpatialSearchUseCase(DefaultSearchTuning())
	out, err := uc.FindNext(context.Background(), FindNextInput{
		Current:    entity.TargetID(current),
		Direction:  dir,
		Candidates: cands,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func TestFindNext_DirectionalFilter(t *testing.T) {
	tests := []struct {
		name      string
		dir       entity.Direction
		offset    float64 // candidate center offset along the main axis
		wantFound bool
	}{
		{"up beyond tolerance", entity.DirUp, -11, true},
		{"up far", entity.DirUp, -500, true},
		{"up within tolerance", entity.DirUp, -10, false},
		{"up same row", entity.DirUp, 0, false},
		{"up candidate below", entity.DirUp, 40, false},
		{"down beyond tolerance", entity.DirDown, 11, true},
		{"down within tolerance", entity.DirDown, 9, false},
		{"down candidate above", entity.DirDown, -60, false},
		{"left beyond tolerance", entity.DirLeft, -11, true},
		{"left within tolerance", entity.DirLeft, -3, false},
		{"right beyond tolerance", entity.DirRight, 200, true},
		{"right candidate left", entity.DirRight, -200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := cand("a", 500, 500, 100, 50)
			b := cand("b", 500, 500, 100, 50)
			if tt.dir.Axis() == entity.AxisVertical {
				b.Rect.Y += tt.offset
			} else {
				b.Rect.X += tt.offset
			}

			out := findNext(t, "a", tt.dir, []entity.Candidate{a, b})

			assert.Equal(t, tt.wantFound, out.Found)
			if tt.wantFound {
				assert.Equal(t, entity.TargetID("b"), out.Target.ID)
			}
		})
	}
}

func TestFindNext_DirectionalFilterSweep(t *testing.T) {
	a := cand("a", 0, 1000, 80, 40)
	for dy := -400.0; dy <= 400; dy += 7 {
		b := cand("b", 300, 1000+dy, 80, 40)
		out := findNext(t, "a", entity.DirUp, []entity.Candidate{a, b})
		if dy < -DefaultAlignTolerance {
			assert.True(t, out.Found, "dy=%v should be eligible", dy)
		} else {
			assert.False(t, out.Found, "dy=%v should not be eligible", dy)
		}
	}
}

func TestFindNext_AlignmentPreference(t *testing.T) {
	a := cand("a", 0, 0, 100, 50)
	// Directly below, full horizontal overlap: center distance 100
	b := cand("b", 0, 100, 100, 50)
	// Below and to the side: center offset (80, 60), also distance 100
	c := cand("c", 80, 60, 100, 50)

	out := findNext(t, "a", entity.DirDown, []entity.Candidate{a, c, b})

	assert.True(t, out.Found)
	assert.Equal(t, entity.TargetID("b"), out.Target.ID)
}

func TestFindNext_ColdStart(t *testing.T) {
	cands := []entity.Candidate{
		cand("x", 500, 500, 10, 10),
		cand("y", 0, 0, 10, 10),
		cand("z", 100, 100, 10, 10),
	}

	for _, dir := range entity.Directions() {
		t.Run(string(dir), func(t *testing.T) {
			out := findNext(t, "", dir, cands)
			assert.True(t, out.Found)
			assert.True(t, out.ColdStart)
			assert.Equal(t, entity.TargetID("x"), out.Target.ID)
		})
	}

	// Stale identity behaves like no focus at all
	out := findNext(t, "gone", entity.DirDown, cands)
	assert.True(t, out.ColdStart)
	assert.Equal(t, entity.TargetID("x"), out.Target.ID)
}

func TestFindNext_NoCandidates(t *testing.T) {
	out := findNext(t, "", entity.DirDown, nil)
	assert.False(t, out.Found)
}

func TestFindNext_InvalidDirection(t *testing.T) {
	uc := NewSpatialSearchUseCase(DefaultSearchTuning())
	_, err := uc.FindNext(context.Background(), FindNextInput{Direction: "diagonal"})
	assert.Error(t, err)
}

func TestFindNext_GridScenario(t *testing.T) {
	cands := gridCandidates()

	out := findNext(t, "r1c2", entity.DirDown, cands)
	require.True(t, out.Found)
	assert.Equal(t, entity.TargetID("r2c2"), out.Target.ID)

	out = findNext(t, "r2c2", entity.DirRight, cands)
	require.True(t, out.Found)
	assert.Equal(t, entity.TargetID("r2c3"), out.Target.ID)

	out = findNext(t, "r2c3", entity.DirRight, cands)
	assert.False(t, out.Found)

	out = findNext(t, "r2c3", entity.DirUp, cands)
	require.True(t, out.Found)
	assert.Equal(t, entity.TargetID("r1c3"), out.Target.ID)

	out = findNext(t, "r1c1", entity.DirLeft, cands)
	assert.False(t, out.Found)
}

func TestFindNext_TieFirstSeenWins(t *testing.T) {
	a := cand("a", 100, 0, 100, 50)
	left := cand("left", 0, 100, 100, 50)
	right := cand("right", 200, 100, 100, 50)

	out := findNext(t, "a", entity.DirDown, []entity.Candidate{a, right, left})
	require.True(t, out.Found)
	assert.Equal(t, entity.TargetID("right"), out.Target.ID)

	out = findNext(t, "a", entity.DirDown, []entity.Candidate{a, left, right})
	require.True(t, out.Found)
	assert.Equal(t, entity.TargetID("left"), out.Target.ID)
}

func TestFindNext_Loop(t *testing.T) {
	uc := NewSpatialSearchUseCase(DefaultSearchTuning())
	cands := gridCandidates()

	tests := []struct {
		name    string
		current string
		dir     entity.Direction
		want    entity.TargetID
	}{
		{"right at row end advances", "r1c3", entity.DirRight, "r2c1"},
		{"right at last wraps to first", "r2c3", entity.DirRight, "r1c1"},
		{"left at first wraps to last", "r1c1", entity.DirLeft, "r2c3"},
		{"up at top row goes back one", "r1c2", entity.DirUp, "r1c1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.FindNext(context.Background(), FindNextInput{
				Current:    entity.TargetID(tt.current),
				Direction:  tt.dir,
				Candidates: cands,
				Loop:       true,
			})
			require.NoError(t, err)
			assert.True(t, out.Found)
			assert.True(t, out.Wrapped)
			assert.Equal(t, tt.want, out.Target.ID)
		})
	}
}

func TestFindNext_LoopSingleCandidate(t *testing.T) {
	uc := NewSpatialSearchUseCase(DefaultSearchTuning())
	out, err := uc.FindNext(context.Background(), FindNextInput{
		Current:    "only",
		Direction:  entity.DirRight,
		Candidates: []entity.Candidate{cand("only", 0, 0, 10, 10)},
		Loop:       true,
	})
	require.NoError(t, err)
	assert.False(t, out.Found)
}

func TestSpatialSearch_SetTuning(t *testing.T) {
	uc := NewSpatialSearchUseCase(DefaultSearchTuning())
	tuning := SearchTuning{AlignTolerance: 50, CrossAxisWeight: 1, AlignmentBonus: 0}
	uc.SetTuning(tuning)
	assert.Equal(t, tuning, uc.Tuning())

	// 40px offset is now inside the tolerance
	a := cand("a", 0, 0, 100, 50)
	b := cand("b", 0, 40, 100, 50)
	out, err := uc.FindNext(context.Background(), FindNextInput{
		Current:    "a",
		Direction:  entity.DirDown,
		Candidates: []entity.Candidate{a, b},
	})
	require.NoError(t, err)
	assert.False(t, out.Found)
}

func TestOverlapFraction(t *testing.T) {
	assert.InDelta(t, 1.0, overlapFraction(50, 100, 50), 0.001)
	assert.InDelta(t, 0.5, overlapFraction(25, 100, 50), 0.001)
	assert.InDelta(t, 0.0, overlapFraction(0, 100, 50), 0.001)
	assert.InDelta(t, 0.0, overlapFraction(10, 0, 50), 0.001)
}
