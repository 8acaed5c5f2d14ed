// Package card renders a stats record as an SVG image
//
// Rendering is a pure function of the record: the same record always yields
// the same bytes, element ids are derived from the login so several cards can
// be inlined into one page without clashing
package card

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"statcard/internal/core/stats"
	pstrings "statcard/internal/platform/strings"
)

const (
	fontFamily   = "Segoe UI, Ubuntu, Helvetica, Arial, sans-serif"
	maxNameRunes = 22
	maxLocRunes  = 24
)

// Render returns the SVG document for rec
func Render(rec stats.Record) ([]byte, error) {
	r := renderer{
		rec: rec,
		lay: Compute(len(rec.Languages), len(rec.Contributions)),
		ids: idPrefix(rec.Username),
		num: message.NewPrinter(language.English),
	}
	b := NewBuilder(Width, r.lay.Height).Title(rec.DisplayName() + "'s GitHub stats")
	r.defs(b)
	r.background(b)
	r.header(b)
	r.badge(b)
	r.info(b)
	r.grid(b)
	if r.lay.HasGraph {
		r.graph(b)
	}
	if r.lay.LangCount > 0 {
		r.languages(b)
	}

	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("card: encode svg: %w", err)
	}
	return out, nil
}

// idPrefix is stable per login
func idPrefix(login string) string {
	return "sc" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/"+login)).String()[:8]
}

type renderer struct {
	rec stats.Record
	lay Layout
	ids string
	num *message.Printer
}

func (r renderer) id(name string) string  { return r.ids + "-" + name }
func (r renderer) ref(name string) string { return "url(#" + r.id(name) + ")" }

func (r renderer) defs(b *Builder) {
	colors := ColorsFor(r.rec.Grade)
	b.Def(
		LinearGradient{ID: r.id("cardGrad"), X1: "0%", Y1: "0%", X2: "100%", Y2: "100%", Stops: []Stop{
			{Offset: "0%", Color: ColorBackground, Opacity: "1"},
			{Offset: "50%", Color: ColorPanel, Opacity: "1"},
			{Offset: "100%", Color: ColorBackground, Opacity: "1"},
		}},
		LinearGradient{ID: r.id("badgeGrad"), X1: "0%", Y1: "0%", X2: "100%", Y2: "100%", Stops: []Stop{
			{Offset: "0%", Color: colors.Fill, Opacity: "1"},
			{Offset: "100%", Color: colors.Glow, Opacity: "1"},
		}},
		LinearGradient{ID: r.id("graphGrad"), X1: "0%", Y1: "0%", X2: "0%", Y2: "100%", Stops: []Stop{
			{Offset: "0%", Color: ColorAccent, Opacity: "0.45"},
			{Offset: "100%", Color: ColorAccent, Opacity: "0"},
		}},
		Filter{ID: r.id("shadow"), Children: []any{
			DropShadow{DX: 0, DY: 2, StdDeviation: 3, FloodOpacity: "0.3"},
		}},
		Filter{ID: r.id("cardShadow"), Children: []any{
			DropShadow{DX: 0, DY: 4, StdDeviation: 8, FloodOpacity: "0.25"},
		}},
		Filter{ID: r.id("glow"), Children: []any{
			GaussianBlur{StdDeviation: 3, Result: "coloredBlur"},
			Merge{Nodes: []MergeNode{{In: "coloredBlur"}, {In: "SourceGraphic"}}},
		}},
	)
}

func (r renderer) background(b *Builder) {
	b.Add(Rect{
		X: 0, Y: 0, Width: Width, Height: Num(r.lay.Height), RX: 20,
		Fill:   r.ref("cardGrad"),
		Filter: r.ref("cardShadow"),
	})
}

func (r renderer) header(b *Builder) {
	b.Add(
		Text{X: SectionPadX, Y: 55, FontFamily: fontFamily, FontSize: "26", FontWeight: "700",
			Fill: ColorText, Filter: r.ref("shadow"), Value: truncate(r.rec.DisplayName(), maxNameRunes)},
		Text{X: SectionPadX, Y: 78, FontFamily: fontFamily, FontSize: "14",
			Fill: ColorMuted, Value: "@" + r.rec.Username},
	)
}

func (r renderer) badge(b *Builder) {
	colors := ColorsFor(r.rec.Grade)
	b.Add(
		Circle{CX: 445, CY: 40, R: 32, Fill: colors.Glow, Opacity: "0.35"},
		Circle{CX: 445, CY: 40, R: 28, Fill: r.ref("badgeGrad"), Stroke: colors.Glow, StrokeWidth: "2"},
		Text{X: 445, Y: 49, FontFamily: fontFamily, FontSize: "24", FontWeight: "800",
			Fill: ColorBackground, Anchor: "middle", Filter: r.ref("glow"), Value: r.rec.Grade.String()},
	)
}

func (r renderer) info(b *Builder) {
	loc := pstrings.Deref(r.rec.Location)
	if loc == "" {
		loc = "Not set"
	}
	joined := "Unknown"
	if r.rec.CreatedAt != nil {
		joined = r.rec.CreatedAt.Format("Jan 2006")
	}
	b.Add(Translate(SectionPadX, 95,
		Text{X: 0, Y: 15, FontFamily: fontFamily, FontSize: "13", Fill: ColorMuted,
			Value: "📍 " + truncate(loc, maxLocRunes)},
		Text{X: 220, Y: 15, FontFamily: fontFamily, FontSize: "13", Fill: ColorMuted,
			Value: "📅 Joined " + joined},
	))
}

func (r renderer) grid(b *Builder) {
	cells := []struct {
		label string
		value int
		note  string
	}{
		{"Public Repos", r.rec.PublicRepos, r.num.Sprintf("%d followers", r.rec.Followers)},
		{"Contributions", r.rec.CommitsThisYear, "this year"},
	}
	for i, c := range cells {
		x := SectionPadX + float64(i)*220
		b.Add(Translate(x, 145,
			Rect{X: 0, Y: 0, Width: 210, Height: 100, RX: 12, Fill: ColorPanel, Opacity: "0.6",
				Stroke: ColorTrack, StrokeWidth: "1"},
			Text{X: 105, Y: 28, FontFamily: fontFamily, FontSize: "13", Fill: ColorMuted,
				Anchor: "middle", Value: c.label},
			Text{X: 105, Y: 64, FontFamily: fontFamily, FontSize: "30", FontWeight: "700",
				Fill: ColorText, Anchor: "middle", Value: r.num.Sprintf("%d", c.value)},
			Text{X: 105, Y: 86, FontFamily: fontFamily, FontSize: "11", Fill: ColorMuted,
				Anchor: "middle", Value: c.note},
		))
	}
}

func (r renderer) graph(b *Builder) {
	plot := r.lay.Plot()
	pts := GraphPoints(stats.Contributions{Days: r.rec.Contributions}.Counts(), plot)

	b.Add(
		Text{X: SectionPadX, Y: Num(r.lay.GraphTop), FontFamily: fontFamily, FontSize: "16",
			FontWeight: "600", Fill: ColorText,
			Value: r.num.Sprintf("Contribution Activity (%d days)", len(r.rec.Contributions))},
		Text{X: SectionPadX + PlotWidth, Y: Num(r.lay.GraphTop), FontFamily: fontFamily, FontSize: "12",
			Fill: ColorMuted, Anchor: "end",
			Value: r.num.Sprintf("Current %d · Longest %d", r.rec.CurrentStreak, r.rec.LongestStreak)},
		Line{X1: Num(plot.X), Y1: Num(plot.Bottom()), X2: Num(plot.X + plot.W), Y2: Num(plot.Bottom()),
			Stroke: ColorTrack, StrokeWidth: "1"},
		Path{D: AreaPath(pts, plot.Bottom()), Fill: r.ref("graphGrad")},
		Path{D: SmoothPath(pts), Fill: "none", Stroke: ColorAccent, StrokeWidth: "2",
			LineCap: "round", LineJoin: "round"},
	)
}

func (r renderer) languages(b *Builder) {
	b.Add(Text{X: SectionPadX, Y: Num(r.lay.LangTop), FontFamily: fontFamily, FontSize: "16",
		FontWeight: "600", Fill: ColorText, Value: "Most Used Languages"})

	for i, l := range r.rec.Languages {
		y := r.lay.BarY(i)
		w := BarWidth * clampPct(l.Percentage) / 100
		b.Add(
			Text{X: BarX, Y: Num(y - 6), FontFamily: fontFamily, FontSize: "12", Fill: ColorText,
				Value: l.Name},
			Text{X: BarX + BarWidth, Y: Num(y - 6), FontFamily: fontFamily, FontSize: "12",
				Fill: ColorMuted, Anchor: "end", Value: fmt.Sprintf("%.1f%%", l.Percentage)},
			Rect{X: BarX, Y: Num(y), Width: BarWidth, Height: BarHeight, RX: 4, Fill: ColorTrack},
			Rect{X: BarX, Y: Num(y), Width: Num(w), Height: BarHeight, RX: 4, Fill: LanguageColor(l.Name),
				Animate: &Animate{AttributeName: "width", From: "0", To: Num(w).String(), Dur: "1s", Fill: "freeze"}},
		)
	}
}

func clampPct(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
