package card

import "strings"

// Point is a plot coordinate
type Point struct {
	X, Y float64
}

// GraphPoints scales daily counts into area
// x is evenly spaced, y is count/max of the plot height above the floor
// an all zero series sits on the floor
func GraphPoints(counts []int, area Box) []Point {
	n := len(counts)
	if n == 0 {
		return nil
	}
	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	pts := make([]Point, n)
	for i, c := range counts {
		x := area.X + area.W/2
		if n > 1 {
			x = area.X + float64(i)*area.W/float64(n-1)
		}
		y := area.Bottom()
		if peak > 0 && c > 0 {
			y -= float64(c) / float64(peak) * area.H
		}
		pts[i] = Point{X: x, Y: y}
	}
	return pts
}

// SmoothPath joins points with quadratic segments through their midpoints
// each original point is a control point so the curve stays within their hull
func SmoothPath(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M" + pt(pts[0]))
	if len(pts) == 1 {
		return b.String()
	}
	b.WriteString(" L" + pt(mid(pts[0], pts[1])))
	for i := 1; i < len(pts)-1; i++ {
		b.WriteString(" Q" + pt(pts[i]) + " " + pt(mid(pts[i], pts[i+1])))
	}
	b.WriteString(" L" + pt(pts[len(pts)-1]))
	return b.String()
}

// AreaPath closes a smoothed line down to floor
func AreaPath(pts []Point, floor float64) string {
	if len(pts) == 0 {
		return ""
	}
	first, last := pts[0], pts[len(pts)-1]
	return SmoothPath(pts) +
		" L" + pt(Point{last.X, floor}) +
		" L" + pt(Point{first.X, floor}) + " Z"
}

func mid(a, b Point) Point { return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

func pt(p Point) string { return Num(p.X).String() + " " + Num(p.Y).String() }
