package bubbletea

import "github.com/fwojciec/scrollstory"

// placeholderRows is the height of the box drawn for a chapter without a
// picture.
const placeholderRows = 7

// trailingScreens is the amount of empty space after the last chapter,
// in viewport heights. It leaves room to scroll past the finale threshold.
const trailingScreens = 3

// Section is the block of content rows belonging to one chapter.
type Section struct {
	Index      int
	Top        int // First content row
	Height     int
	AnchorTop  int // First content row of the anchor
	AnchorRows int
}

// Layout places chapters on a vertical strip of content rows. Every section
// is at least one viewport tall and centers its anchor.
type Layout struct {
	Width    int
	Height   int // Viewport rows
	Sections []Section
	Total    int // Content rows including the trailing space
}

// NewLayout lays out chapters for a viewport of width by height cells.
func NewLayout(chapters []scrollstory.Chapter, width, height int) Layout {
	l := Layout{Width: width, Height: height, Sections: make([]Section, len(chapters))}
	row := 0
	for i, ch := range chapters {
		anchor := anchorRows(ch)
		h := max(height, anchor+2)
		l.Sections[i] = Section{
			Index:      i,
			Top:        row,
			Height:     h,
			AnchorTop:  row + (h-anchor)/2,
			AnchorRows: anchor,
		}
		row += h
	}
	l.Total = row + trailingScreens*height
	return l
}

// MaxOffset returns the largest valid scroll offset.
func (l Layout) MaxOffset() int {
	return max(0, l.Total-l.Height)
}

// SectionAt returns the section containing content row, if any.
func (l Layout) SectionAt(row int) (Section, bool) {
	for _, s := range l.Sections {
		if row >= s.Top && row < s.Top+s.Height {
			return s, true
		}
	}
	return Section{}, false
}

func anchorRows(ch scrollstory.Chapter) int {
	if rows := ch.Picture.Rows(); rows > 0 {
		return rows
	}
	return placeholderRows
}
