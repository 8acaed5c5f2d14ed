package card

// Card geometry
const (
	Width      = 500.0
	BaseHeight = 290.0

	LangRowHeight   = 34.0
	LangBlockExtra  = 70.0
	GraphHeight     = 160.0
	SectionPadX     = 35.0
	BarX            = 40.0
	BarWidth        = 420.0
	BarHeight       = 8.0
	PlotWidth       = 430.0
	PlotHeight      = 100.0
	sectionTitleGap = 30.0
)

// Layout is the vertical arrangement of a card
// sections after the stats grid stack in order graph, languages
type Layout struct {
	Height    float64
	HasGraph  bool
	GraphTop  float64
	LangCount int
	LangTop   float64
}

// Compute returns the layout for a card with langs language rows and days graph points
// the height grows by exactly langs*LangRowHeight+LangBlockExtra when languages exist
func Compute(langs, days int) Layout {
	l := Layout{Height: BaseHeight, LangCount: langs}
	cursor := BaseHeight - 5

	if days > 0 {
		l.HasGraph = true
		l.GraphTop = cursor
		cursor += GraphHeight
		l.Height += GraphHeight
	}
	if langs > 0 {
		l.LangTop = cursor
		l.Height += float64(langs)*LangRowHeight + LangBlockExtra
	}
	return l
}

// Plot returns the graph plot rectangle
func (l Layout) Plot() Box {
	return Box{X: SectionPadX, Y: l.GraphTop + 20, W: PlotWidth, H: PlotHeight}
}

// BarY returns the top of the i-th language bar
func (l Layout) BarY(i int) float64 {
	return l.LangTop + sectionTitleGap + float64(i)*LangRowHeight
}

// Box is an axis aligned rectangle
type Box struct {
	X, Y, W, H float64
}

// Bottom returns the lower edge
func (b Box) Bottom() float64 { return b.Y + b.H }
