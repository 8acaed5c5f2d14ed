package card

import (
	"encoding/xml"
	"math"
	"strconv"
)

// Num is a coordinate or length written with at most two decimals
type Num float64

// MarshalXMLAttr implements xml.MarshalerAttr
func (n Num) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: n.String()}, nil
}

// String formats n without trailing zeros
func (n Num) String() string {
	r := math.Round(float64(n)*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Rect is an svg rect
type Rect struct {
	XMLName     xml.Name `xml:"rect"`
	X           Num      `xml:"x,attr"`
	Y           Num      `xml:"y,attr"`
	Width       Num      `xml:"width,attr"`
	Height      Num      `xml:"height,attr"`
	RX          Num      `xml:"rx,attr,omitempty"`
	Fill        string   `xml:"fill,attr,omitempty"`
	Opacity     string   `xml:"opacity,attr,omitempty"`
	Stroke      string   `xml:"stroke,attr,omitempty"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
	Filter      string   `xml:"filter,attr,omitempty"`
	Animate     *Animate `xml:"animate,omitempty"`
}

// Animate is an svg animate child
type Animate struct {
	XMLName       xml.Name `xml:"animate"`
	AttributeName string   `xml:"attributeName,attr"`
	From          string   `xml:"from,attr"`
	To            string   `xml:"to,attr"`
	Dur           string   `xml:"dur,attr"`
	Fill          string   `xml:"fill,attr"`
}

// Circle is an svg circle
type Circle struct {
	XMLName     xml.Name `xml:"circle"`
	CX          Num      `xml:"cx,attr"`
	CY          Num      `xml:"cy,attr"`
	R           Num      `xml:"r,attr"`
	Fill        string   `xml:"fill,attr,omitempty"`
	Opacity     string   `xml:"opacity,attr,omitempty"`
	Stroke      string   `xml:"stroke,attr,omitempty"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
}

// Text is an svg text run; Value is escaped on output
type Text struct {
	XMLName       xml.Name `xml:"text"`
	X             Num      `xml:"x,attr"`
	Y             Num      `xml:"y,attr"`
	FontFamily    string   `xml:"font-family,attr,omitempty"`
	FontSize      string   `xml:"font-size,attr,omitempty"`
	FontWeight    string   `xml:"font-weight,attr,omitempty"`
	Fill          string   `xml:"fill,attr,omitempty"`
	Anchor        string   `xml:"text-anchor,attr,omitempty"`
	LetterSpacing string   `xml:"letter-spacing,attr,omitempty"`
	Filter        string   `xml:"filter,attr,omitempty"`
	Value         string   `xml:",chardata"`
}

// Path is an svg path
type Path struct {
	XMLName     xml.Name `xml:"path"`
	D           string   `xml:"d,attr"`
	Fill        string   `xml:"fill,attr"`
	Opacity     string   `xml:"opacity,attr,omitempty"`
	Stroke      string   `xml:"stroke,attr,omitempty"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
	LineCap     string   `xml:"stroke-linecap,attr,omitempty"`
	LineJoin    string   `xml:"stroke-linejoin,attr,omitempty"`
}

// Line is an svg line
type Line struct {
	XMLName     xml.Name `xml:"line"`
	X1          Num      `xml:"x1,attr"`
	Y1          Num      `xml:"y1,attr"`
	X2          Num      `xml:"x2,attr"`
	Y2          Num      `xml:"y2,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
}

// Group is an svg g element
type Group struct {
	XMLName   xml.Name `xml:"g"`
	Transform string   `xml:"transform,attr,omitempty"`
	Children  []any
}

// Translate returns a group moved to x, y
func Translate(x, y float64, children ...any) Group {
	return Group{Transform: "translate(" + Num(x).String() + ", " + Num(y).String() + ")", Children: children}
}

// Stop is a gradient stop
type Stop struct {
	XMLName xml.Name `xml:"stop"`
	Offset  string   `xml:"offset,attr"`
	Color   string   `xml:"stop-color,attr"`
	Opacity string   `xml:"stop-opacity,attr"`
}

// LinearGradient is an svg linearGradient definition
type LinearGradient struct {
	XMLName xml.Name `xml:"linearGradient"`
	ID      string   `xml:"id,attr"`
	X1      string   `xml:"x1,attr"`
	Y1      string   `xml:"y1,attr"`
	X2      string   `xml:"x2,attr"`
	Y2      string   `xml:"y2,attr"`
	Stops   []Stop
}

// Filter is an svg filter definition
type Filter struct {
	XMLName  xml.Name `xml:"filter"`
	ID       string   `xml:"id,attr"`
	Children []any
}

// DropShadow is feDropShadow
type DropShadow struct {
	XMLName      xml.Name `xml:"feDropShadow"`
	DX           Num      `xml:"dx,attr"`
	DY           Num      `xml:"dy,attr"`
	StdDeviation Num      `xml:"stdDeviation,attr"`
	FloodOpacity string   `xml:"flood-opacity,attr"`
}

// GaussianBlur is feGaussianBlur
type GaussianBlur struct {
	XMLName      xml.Name `xml:"feGaussianBlur"`
	StdDeviation Num      `xml:"stdDeviation,attr"`
	Result       string   `xml:"result,attr,omitempty"`
}

// Merge is feMerge
type Merge struct {
	XMLName xml.Name `xml:"feMerge"`
	Nodes   []MergeNode
}

// MergeNode is feMergeNode
type MergeNode struct {
	XMLName xml.Name `xml:"feMergeNode"`
	In      string   `xml:"in,attr"`
}

type defs struct {
	Children []any
}

type document struct {
	XMLName xml.Name `xml:"http://www.w3.org/2000/svg svg"`
	Width   Num      `xml:"width,attr"`
	Height  Num      `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Role    string   `xml:"role,attr"`
	Label   string   `xml:"aria-label,attr,omitempty"`
	Title   string   `xml:"title,omitempty"`
	Defs    defs     `xml:"defs"`
	Body    []any
}

// Builder collects typed nodes and serializes them once
type Builder struct {
	doc document
}

// NewBuilder starts a document of the given size
func NewBuilder(width, height float64) *Builder {
	return &Builder{doc: document{
		Width:   Num(width),
		Height:  Num(height),
		ViewBox: "0 0 " + Num(width).String() + " " + Num(height).String(),
		Role:    "img",
	}}
}

// Title sets the accessible title
func (b *Builder) Title(s string) *Builder {
	b.doc.Title = s
	b.doc.Label = s
	return b
}

// Def appends definitions (gradients, filters)
func (b *Builder) Def(nodes ...any) *Builder {
	b.doc.Defs.Children = append(b.doc.Defs.Children, nodes...)
	return b
}

// Add appends drawable nodes in paint order
func (b *Builder) Add(nodes ...any) *Builder {
	b.doc.Body = append(b.doc.Body, nodes...)
	return b
}

// Bytes serializes the document
func (b *Builder) Bytes() ([]byte, error) {
	return xml.MarshalIndent(b.doc, "", "  ")
}
