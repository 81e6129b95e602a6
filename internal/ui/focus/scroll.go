package focus

import (
	"context"
	"math"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// Default scroll margins, in viewport pixels.
const (
	DefaultScrollTopMargin    = 120.0
	DefaultScrollBottomMargin = 120.0
	DefaultScrollSideMargin   = 50.0
	DefaultComfortLine        = 0.4 // fraction of viewport height
)

// ScrollMargins decides when a focused target is too close to a viewport edge.
type ScrollMargins struct {
	Top    float64
	Bottom float64
	Side   float64
	// ComfortLine is where the target center lands after a vertical scroll,
	// as a fraction of the viewport height.
	ComfortLine float64
}

// DefaultScrollMargins returns the default margins.
func DefaultScrollMargins() ScrollMargins {
	return ScrollMargins{
		Top:         DefaultScrollTopMargin,
		Bottom:      DefaultScrollBottomMargin,
		Side:        DefaultScrollSideMargin,
		ComfortLine: DefaultComfortLine,
	}
}

// outOfViewX reports whether rect is offscreen or inside a side margin.
func (m ScrollMargins) outOfViewX(rect, viewport entity.Rect) bool {
	return rect.X < viewport.X+m.Side || rect.Right() > viewport.Right()-m.Side
}

// outOfViewY reports whether rect is offscreen or inside the top/bottom margin.
func (m ScrollMargins) outOfViewY(rect, viewport entity.Rect) bool {
	return rect.Y < viewport.Y+m.Top || rect.Bottom() > viewport.Bottom()-m.Bottom
}

// scrollIntoViewLocked runs the two-stage scroll: the nearest horizontal
// scroller centers the target first, then the page moves vertically.
// Each stage only runs when its axis is out of the comfortable area.
// Must be called with c.mu held.
func (c *Controller) scrollIntoViewLocked(ctx context.Context, target entity.Candidate) {
	if c.scroller == nil {
		return
	}
	log := logging.FromContext(ctx)

	viewport := c.scroller.Viewport()
	if viewport.Empty() {
		return
	}
	margins := c.opts.Scroll
	rect := target.Rect

	if margins.outOfViewX(rect, viewport) {
		if container, ok := c.scroller.HorizontalScroller(target.ID); ok {
			ccx, _ := container.Center()
			tcx, _ := rect.Center()
			dx := tcx - ccx
			if math.Abs(dx) >= 1 {
				c.scroller.ScrollHorizontal(target.ID, dx)
				log.Debug().Str("target", string(target.ID)).Float64("dx", dx).Msg("scrolled container horizontally")
			}
		}
	}

	if margins.outOfViewY(rect, viewport) {
		_, tcy := rect.Center()
		dy := tcy - (viewport.Y + viewport.H*margins.ComfortLine)
		if math.Abs(dy) >= 1 {
			c.scroller.ScrollVertical(dy)
			log.Debug().Str("target", string(target.ID)).Float64("dy", dy).Msg("scrolled viewport vertically")
		}
	}
}
