package bubbletea

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scrollstory"
)

// trackMargin is the blank space on either side of the timeline track.
const trackMargin = 2

// Glyphs.
const (
	glyphTrack        = "─"
	glyphMarker       = "○"
	glyphMarkerActive = "●"
	glyphCursor       = "▌"
	glyphHalfBlock    = "▀"
)

// defaultPalette is used when no theme is set.
func defaultPalette() scrollstory.Palette {
	return scrollstory.Palette{
		Foreground:   "#3b3024",
		Paper:        "#fffaf0",
		Ink:          "#3b3024",
		Heading:      "#8c3b4a",
		Emphasis:     "#6b4f8a",
		Strong:       "#8c3b4a",
		Cursor:       "#c06c84",
		Track:        "#cdbfa8",
		Marker:       "#a8927a",
		MarkerActive: "#c06c84",
		Muted:        "#a8927a",
		Accent:       "#c06c84",
		UIBackground: "#ede3cf",
		UIForeground: "#7a6a58",
	}
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

func (m Model) place(width, height int, content string) string {
	if m.renderer != nil {
		return m.renderer.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// color converts a palette color; empty means the terminal default.
func color(c scrollstory.Color) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}

// markerColumns returns the screen column of each marker on a track
// spanning width.
func markerColumns(markers []scrollstory.Marker, width int) []int {
	track := max(1, width-2*trackMargin)
	cols := make([]int, len(markers))
	for i, mk := range markers {
		cols[i] = trackMargin + int(math.Round(mk.Position*float64(track-1)))
	}
	return cols
}

// markerAt returns the chapter whose marker is at or next to column x.
func markerAt(markers []scrollstory.Marker, width, x int) (int, bool) {
	best, bestDist := -1, 2
	for i, col := range markerColumns(markers, width) {
		dist := col - x
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = markers[i].Index, dist
		}
	}
	return best, best >= 0
}

// timelineView renders the two header rows: the track with one marker per
// chapter and the label of the active one underneath.
func (m Model) timelineView(snap scrollstory.Snapshot) string {
	trackStyle := m.newStyle().Foreground(color(m.palette.Track))
	markerStyle := m.newStyle().Foreground(color(m.palette.Marker))
	activeStyle := m.newStyle().Foreground(color(m.palette.MarkerActive)).Bold(true)
	labelStyle := m.newStyle().Foreground(color(m.palette.Heading))

	cols := markerColumns(snap.Markers, m.width)
	at := make(map[int]scrollstory.Marker, len(cols))
	for i, mk := range snap.Markers {
		// Crowded markers share a column; the active one wins.
		if _, taken := at[cols[i]]; !taken || mk.Active {
			at[cols[i]] = mk
		}
	}

	track := max(1, m.width-2*trackMargin)
	var b strings.Builder
	run := 0
	flush := func() {
		if run > 0 {
			b.WriteString(trackStyle.Render(strings.Repeat(glyphTrack, run)))
			run = 0
		}
	}
	for x := 0; x < m.width; x++ {
		mk, ok := at[x]
		switch {
		case ok && mk.Active:
			flush()
			b.WriteString(activeStyle.Render(glyphMarkerActive))
		case ok:
			flush()
			b.WriteString(markerStyle.Render(glyphMarker))
		case x >= trackMargin && x < trackMargin+track:
			run++
		default:
			flush()
			b.WriteString(" ")
		}
	}
	flush()

	label := m.narrative.Title
	center := m.width / 2
	for i, mk := range snap.Markers {
		if mk.Active {
			label, center = mk.Label, cols[i]
		}
	}
	width := lipgloss.Width(label)
	start := max(0, min(center-width/2, m.width-width))
	labelRow := strings.Repeat(" ", start) + labelStyle.Render(label)
	labelRow = m.newStyle().Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(labelRow)

	return b.String() + "\n" + labelRow
}

// chaptersView renders the viewport: each chapter's anchor on the side
// opposite its panel, with the active chapter's panel centered on its side.
func (m Model) chaptersView(snap scrollstory.Snapshot) string {
	layout := m.surface.Layout()
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth
	left := make([]string, layout.Height)
	right := make([]string, layout.Height)
	half := func(side scrollstory.Side) ([]string, int) {
		if side == scrollstory.SideRight {
			return right, rightWidth
		}
		return left, leftWidth
	}

	row := m.surface.Row()
	for _, sec := range layout.Sections {
		if sec.AnchorTop+sec.AnchorRows <= row || sec.AnchorTop >= row+layout.Height {
			continue
		}
		cells, width := half(scrollstory.SideFor(sec.Index).Opposite())
		for j, line := range m.anchorLines(sec.Index, width) {
			if y := sec.AnchorTop + j - row; y >= 0 && y < layout.Height {
				cells[y] = line
			}
		}
	}

	if p, ok := snap.PanelFor(scrollstory.SideLeft); ok {
		overlay(left, m.panelLines(p, leftWidth))
	}
	if p, ok := snap.PanelFor(scrollstory.SideRight); ok {
		overlay(right, m.panelLines(p, rightWidth))
	}

	lines := make([]string, layout.Height)
	for y := range lines {
		lines[y] = m.cell(left[y], leftWidth) + m.cell(right[y], rightWidth)
	}
	return strings.Join(lines, "\n")
}

// overlay writes box over cells, vertically centered.
func overlay(cells, box []string) {
	start := max(0, (len(cells)-len(box))/2)
	for j, line := range box {
		if y := start + j; y < len(cells) {
			cells[y] = line
		}
	}
}

// cell centers s in a single row of width cells, truncating if needed.
func (m Model) cell(s string, width int) string {
	return m.newStyle().
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Align(lipgloss.Center).
		Render(s)
}

// anchorLines returns the rendered anchor of a chapter: its picture, or a
// placeholder box when it has none.
func (m Model) anchorLines(index, width int) []string {
	if lines, ok := m.art[index]; ok {
		return lines
	}
	ch := m.narrative.Chapters[index]
	var lines []string
	if ch.Picture.Rows() > 0 {
		lines = m.pictureLines(ch.Picture)
	} else {
		lines = m.placeholderLines(ch, width)
	}
	m.art[index] = lines
	return lines
}

// pictureLines draws two pixel rows per terminal row using upper half
// blocks: the top pixel is the foreground and the bottom one the background.
func (m Model) pictureLines(p *scrollstory.Picture) []string {
	lines := make([]string, p.Rows())
	for y := range lines {
		var b strings.Builder
		for x := 0; x < p.Width; x++ {
			style := m.newStyle().Foreground(color(p.At(x, 2*y)))
			if bottom := p.At(x, 2*y+1); bottom != "" {
				style = style.Background(color(bottom))
			}
			b.WriteString(style.Render(glyphHalfBlock))
		}
		lines[y] = b.String()
	}
	return lines
}

func (m Model) placeholderLines(ch scrollstory.Chapter, width int) []string {
	label := ch.Image.Alt
	if label == "" {
		label = ch.Title
	}
	inner := m.newStyle().
		Foreground(color(m.palette.Muted)).
		Italic(true).
		Width(max(8, min(width-6, 30))).
		Height(placeholderRows-2).
		MaxHeight(placeholderRows-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
	box := m.newStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(m.palette.Muted)).
		Render(inner)
	return strings.Split(box, "\n")
}

// panelLines renders the narrative panel for one half of the screen.
func (m Model) panelLines(p scrollstory.PanelView, width int) []string {
	paper := color(m.palette.Paper)
	title := m.newStyle().
		Foreground(color(m.palette.Heading)).
		Background(paper).
		Bold(true).
		Render(p.Title)
	text := m.styledText(p.Text)
	if p.Typing {
		text += m.newStyle().Foreground(color(m.palette.Cursor)).Background(paper).Render(glyphCursor)
	}
	vertical, horizontal := densityPadding(p.Density)
	box := m.newStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(m.palette.Accent)).
		Background(paper).
		Padding(vertical, horizontal).
		Width(max(10, width-4)).
		Render(title + "\n\n" + text)
	return strings.Split(box, "\n")
}

// densityPadding returns the panel padding for a density.
func densityPadding(d scrollstory.Density) (vertical, horizontal int) {
	switch d {
	case scrollstory.DensityCompact:
		return 0, 1
	case scrollstory.DensityRegular:
		return 1, 2
	default:
		return 1, 3
	}
}

// styledText renders revealed body text, styling markdown emphasis when a
// tokenizer is available.
func (m Model) styledText(text string) string {
	base := m.newStyle().Foreground(color(m.palette.Ink)).Background(color(m.palette.Paper))
	text = ExpandTabs(text)
	if m.tokenizer == nil {
		return base.Render(text)
	}
	tokens := m.tokenizer.Tokenize("markdown", text)
	if tokens == nil {
		return base.Render(text)
	}
	var b strings.Builder
	for _, tok := range tokens {
		style := base
		if tok.Style.Foreground != "" {
			style = style.Foreground(color(tok.Style.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		if tok.Style.Italic {
			style = style.Italic(true)
		}
		// Render line by line so a token spanning lines is not padded.
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				b.WriteString("\n")
			}
			if part != "" {
				b.WriteString(style.Render(part))
			}
		}
	}
	return b.String()
}

// finaleView renders the closing screen in height rows.
func (m Model) finaleView(height int) string {
	f := m.narrative.Finale
	heading := f.Heading
	if heading == "" {
		heading = "The End"
	}
	headingStyle := m.newStyle().Foreground(color(m.palette.Heading)).Bold(true)
	inkStyle := m.newStyle().Foreground(color(m.palette.Foreground))
	actionStyle := m.newStyle().Foreground(color(m.palette.Accent))

	parts := []string{headingStyle.Render(heading), ""}
	for _, line := range f.Lines {
		parts = append(parts, inkStyle.Render(line))
	}
	parts = append(parts, "")
	if m.giftOpen {
		parts = append(parts, m.giftView(), "")
	}

	actions := []string{actionStyle.Render("[t] back to top")}
	if len(f.Gift) > 0 {
		if m.giftOpen {
			actions = append(actions, actionStyle.Render("[o] close gift"))
		} else {
			actions = append(actions, actionStyle.Render("[o] open gift"))
		}
	}
	parts = append(parts, strings.Join(actions, "   "))

	return m.place(m.width, height, lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// giftView renders the gift cards side by side, or stacked when they do not
// fit the screen.
func (m Model) giftView() string {
	cardStyle := m.newStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color(m.palette.Accent)).
		Foreground(color(m.palette.Foreground)).
		Padding(0, 1).
		Align(lipgloss.Center)
	cards := make([]string, len(m.narrative.Finale.Gift))
	for i, g := range m.narrative.Finale.Gift {
		cards[i] = cardStyle.Render(g)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(row) > m.width {
		return lipgloss.JoinVertical(lipgloss.Center, cards...)
	}
	return row
}

func (m Model) helpView(height int) string {
	return m.place(m.width, height, m.help.FullHelpView(m.keymap.FullHelp()))
}

// statusBarView renders the status bar with position info.
func (m Model) statusBarView(snap scrollstory.Snapshot) string {
	barStyle := m.newStyle().
		Background(color(m.palette.UIBackground)).
		Foreground(color(m.palette.Foreground))

	dimStyle := m.newStyle().
		Background(color(m.palette.UIBackground)).
		Foreground(color(m.palette.Muted))

	sepStyle := m.newStyle().
		Background(color(m.palette.UIBackground)).
		Foreground(color(m.palette.UIForeground))

	total := len(m.narrative.Chapters)
	var pos string
	switch {
	case snap.Finale:
		pos = "finale"
	case snap.HasActive && snap.Active < total:
		width := digitWidth(total)
		pos = fmt.Sprintf("chapter %*d/%-*d: %s", width, snap.Active+1, width, total, m.narrative.Chapters[snap.Active].Title)
	default:
		pos = fmt.Sprintf("chapter -/%d", total)
	}

	sep := sepStyle.Render(" │ ")
	content := barStyle.Render(pos) + sep + barStyle.Render(scrollPosition(snap.Viewport)) + sep
	if m.notice != "" {
		content += barStyle.Render(m.notice) + sep
	}
	content += dimStyle.Render("j/k:scroll  n/N:chapter  t:top  ?:help  q:quit") + barStyle.Render("  ")

	// Right-align by padding left side with background
	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		padding := barStyle.Render(strings.Repeat(" ", m.width-contentWidth))
		content = padding + content
	}
	return m.newStyle().MaxWidth(m.width).Render(content)
}

// scrollPosition returns a string indicating the scroll position.
func scrollPosition(vp scrollstory.ViewportState) string {
	switch {
	case vp.ScrollOffset <= 0:
		return "Top"
	case vp.ScrollOffset >= vp.ScrollableHeight:
		return "Bot"
	}
	return fmt.Sprintf("%2d%%", int(scrollstory.ScrollFraction(vp)*100))
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
