package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/domain/entity"
)

// Render draws the viewport of the current screen. Every block is sized
// exactly like its node in the layout so markers and hit tests line up.
func (s *Shell) Render(theme *styles.Theme) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.modal != nil {
		return s.renderModalLocked(theme)
	}

	var page string
	if r := s.routeLocked(); r.screen == ScreenPlayer {
		page = s.renderPlayerLocked(theme, r)
	} else {
		page = s.renderHomeLocked(theme)
	}
	return s.cropLocked(page, int(s.scrollY/cellH))
}

// cropLocked cuts the page to the viewport starting at line top.
func (s *Shell) cropLocked(page string, top int) string {
	lines := strings.Split(page, "\n")
	lines = lines[min(top, len(lines)):]
	if len(lines) > s.vpRows {
		lines = lines[:s.vpRows]
	}
	for len(lines) < s.vpRows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (s *Shell) renderHomeLocked(theme *styles.Theme) string {
	rail := make([]string, 0, len(s.catalog.Channels))
	for _, ch := range s.catalog.Channels {
		id := channelID(ch.Slug)
		mark := " "
		if s.favorite[ch.Slug] {
			mark = styles.IconStar
		}
		label := fmt.Sprintf("%s%d %s", mark, ch.Number, ch.Name)
		rail = append(rail, s.box(theme, id, false, clip(label, railCols-2), railCols, channelRows))
	}

	blocks := []string{s.renderSearchLocked(theme)}
	for _, shelf := range s.catalog.Shelves {
		titles := s.shelfTitlesLocked(shelf)
		key := scrollerKey(ScreenHome, shelf.Slug)
		row := s.renderShelfLocked(theme, shelf.Slug, titles, shelf.Upcoming, key, mainCol)
		blocks = append(blocks, theme.RowTitle.Render(clip(shelf.Name, s.vpCols-mainCol)), row, "")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, rail...),
		strings.Repeat(" ", mainCol-railCols),
		lipgloss.JoinVertical(lipgloss.Left, blocks...),
	)
}

func (s *Shell) renderSearchLocked(theme *styles.Theme) string {
	style := theme.Field
	if s.markers[searchID] {
		style = theme.FieldFocused
	}
	text := s.query
	if text == "" && s.native != searchID {
		text = theme.Subtle.Render("Search titles")
	} else {
		text = clip(text, searchCols-5) + "▏"
	}
	return style.Width(searchCols - 2).Height(searchRows - 2).Render(" " + text)
}

// renderShelfLocked draws the tiles of one carousel that fit entirely in its
// scroller, shifted by the scroller offset.
func (s *Shell) renderShelfLocked(theme *styles.Theme, shelf string, titles []Title, upcoming bool, key string, col int) string {
	width := s.vpCols - col
	offset := int(s.hscroll[key] / cellW)

	var (
		tiles []string
		lead  = -1
	)
	for j, t := range titles {
		start := j*tileStride - offset
		if start < 0 || start+tileCols > width {
			continue
		}
		if lead < 0 {
			lead = start
		} else {
			tiles = append(tiles, strings.Repeat(" ", tileStride-tileCols))
		}
		tiles = append(tiles, s.renderTileLocked(theme, tileID(shelf, t.Slug), t, upcoming))
	}

	if len(tiles) == 0 {
		return lipgloss.NewStyle().Height(tileRows).Render(theme.Subtle.Render("  No match"))
	}
	return lipgloss.NewStyle().PaddingLeft(lead).Render(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
}

func (s *Shell) renderTileLocked(theme *styles.Theme, id entity.TargetID, t Title, upcoming bool) string {
	inner := tileCols - 2
	meta := fmt.Sprintf("%d", t.Year)
	if t.Subtitles {
		meta += "  CC"
	}
	badge := ""
	if upcoming {
		badge = "soon"
	}
	content := strings.Join([]string{clip(t.Name, inner), meta, badge}, "\n")
	return s.box(theme, id, upcoming, content, tileCols, tileRows)
}

// box renders a bordered focusable of the given outer size.
func (s *Shell) box(theme *styles.Theme, id entity.TargetID, disabled bool, content string, cols, rows int) string {
	style := theme.Tile
	switch {
	case disabled:
		style = theme.TileDisabled
	case s.markers[id]:
		style = theme.TileFocused
	}
	return style.Width(cols - 2).Height(rows - 2).Render(content)
}

func (s *Shell) button(theme *styles.Theme, id entity.TargetID, label string, hidden bool) string {
	if hidden {
		return lipgloss.NewStyle().Width(controlCols).Height(controlRows).Render("")
	}
	style := theme.Button
	if s.markers[id] {
		style = theme.ButtonFocused
	}
	return style.Width(controlCols - 2).Height(controlRows - 2).Render(clip(label, controlCols-2))
}

func (s *Shell) renderPlayerLocked(theme *styles.Theme, r route) string {
	width := max(s.vpCols-2*playerCol, 10)

	heading := r.slug
	subs := r.live
	if r.live {
		if ch, ok := s.catalog.channel(r.slug); ok {
			heading = fmt.Sprintf("● LIVE  %s", ch.Name)
		}
	} else if t, ok := s.catalog.title(r.slug); ok {
		heading = fmt.Sprintf("%s %s (%d)", styles.IconFilm, t.Name, t.Year)
		subs = t.Subtitles
	}

	state := styles.IconPause + " paused"
	if s.playing {
		state = styles.IconPlay + " playing"
	}
	detail := fmt.Sprintf("%s  %02d:%02d / %02d:%02d", state, s.position/60, s.position%60, playerDuration/60, playerDuration%60)
	if s.subtitles {
		detail += "  subtitles on"
	}

	filled := width * s.position / playerDuration
	progress := lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Repeat("━", filled)) +
		theme.Subtle.Render(strings.Repeat("─", width-filled))

	controls := make([]string, 0, 2*len(playerControls))
	for i, c := range playerControls {
		if i > 0 {
			controls = append(controls, strings.Repeat(" ", controlStride-controlCols))
		}
		controls = append(controls, s.button(theme, controlID(c.action), c.label, c.action == "subtitles" && !subs))
	}

	related := s.catalog.related(r.slug)
	blocks := []string{
		theme.Title.Render(clip(heading, width)),
		theme.Subtle.Render(clip(detail, width)),
		progress,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, controls...),
		"",
		theme.RowTitle.Render("More like this"),
		s.renderShelfLocked(theme, "related", related, false, scrollerKey(ScreenPlayer, "related"), playerCol),
		"",
	}
	if s.info != nil {
		blocks = append(blocks, theme.Box.Padding(0, 1).Width(width-2).Height(infoRows-2).Render(
			clip(heading, width-4)+"\n"+theme.Subtle.Render("Press Back to close this panel."),
		))
	}

	return lipgloss.NewStyle().PaddingLeft(playerCol).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func (s *Shell) renderModalLocked(theme *styles.Theme) string {
	ch, _ := s.catalog.channel(s.modal.channel)
	nodes := s.layoutModalLocked()

	buttons := make([]string, 0, 2*len(nodes))
	for i, n := range nodes {
		if i > 0 {
			buttons = append(buttons, strings.Repeat(" ", controlStride-controlCols))
		}
		buttons = append(buttons, s.button(theme, n.id, n.label, false))
	}

	inner := modalCols - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(clip(fmt.Sprintf("%s %d  %s", styles.IconRemote, ch.Number, ch.Name), inner)),
		theme.Subtle.Render(clip("Live now. Watch, or add to favorites.", inner)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
	box := theme.Modal.Width(modalCols - 2).Height(modalRows - 2).Render(body)

	left, top := s.modalOriginLocked()
	return s.cropLocked(lipgloss.NewStyle().PaddingLeft(left).PaddingTop(top).Render(box), 0)
}

func clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}
