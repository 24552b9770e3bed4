package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

const (
	placeholderSize  = 400
	placeholderColor = "#6b7280"
	placeholderFont  = 16
)

// EncodeSVG writes scene as a standalone SVG document. Coordinates are
// rounded to whole pixels.
func EncodeSVG(scene *Scene, w io.Writer) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	width, height := px(scene.Width()), px(scene.Height())
	if msg := scene.Message(); msg != "" {
		if width <= 0 || height <= 0 {
			width, height = placeholderSize, placeholderSize
		}
		canvas.Startview(width, height, 0, 0, width, height)
		canvas.Text(width/2, height/2, msg,
			`text-anchor="middle"`,
			attr("fill", placeholderColor),
			attr("font-size", strconv.Itoa(placeholderFont)))
		canvas.End()
		return flush(&buf, w)
	}

	canvas.Startview(width, height, 0, 0, width, height)
	for _, child := range scene.Children(Root) {
		writeElement(canvas, scene, child)
	}
	canvas.End()
	return flush(&buf, w)
}

func flush(buf *bytes.Buffer, w io.Writer) error {
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func writeElement(canvas *svg.SVG, scene *Scene, id ID) {
	el, _ := scene.Element(id)

	switch el.Kind {
	case KindLine:
		attrs := []string{
			attr("class", el.Class),
			attr("stroke", el.Stroke),
			attr("stroke-width", num(el.StrokeWidth)),
			attr("opacity", num(el.Opacity)),
		}
		if el.MarkerEnd != "" {
			attrs = append(attrs, attr("marker-end", "url(#"+el.MarkerEnd+")"))
		}
		canvas.Line(px(el.X1), px(el.Y1), px(el.X2), px(el.Y2), attrs...)

	case KindCircle:
		canvas.Circle(px(el.X), px(el.Y), px(el.R),
			attr("class", el.Class),
			attr("fill", el.Fill),
			attr("stroke", el.Stroke),
			attr("stroke-width", num(el.StrokeWidth)))

	case KindText:
		attrs := []string{
			attr("class", el.Class),
			attr("text-anchor", el.Anchor),
			attr("fill", el.Fill),
			attr("font-size", num(el.FontSize)),
			attr("font-weight", el.FontWeight),
		}
		if len(el.Lines) == 0 {
			canvas.Text(px(el.X), px(el.Y+el.DY), el.Text, attrs...)
			return
		}
		// Wrapped titles are one text element per line.
		for _, line := range el.Lines {
			canvas.Text(px(el.X), px(el.Y+line.DY), line.Text, attrs...)
		}

	case KindMarker:
		half := el.Size / 2
		canvas.Marker(el.Key, px(el.Size), 0, px(el.Width), px(el.Height),
			attr("viewBox", fmt.Sprintf("0 %s %s %s", num(-half), num(el.Size), num(el.Size))),
			`orient="auto"`,
			`markerUnits="userSpaceOnUse"`)
		canvas.Path(fmt.Sprintf("M 0,%s L %s,0 L 0,%s Z", num(-half), num(el.Size), num(half)),
			attr("fill", el.Fill),
			attr("stroke", el.Stroke),
			attr("stroke-width", num(el.StrokeWidth)))
		canvas.MarkerEnd()

	case KindDefs:
		canvas.Def()
		for _, child := range scene.Children(id) {
			writeElement(canvas, scene, child)
		}
		canvas.DefEnd()

	case KindGroup:
		canvas.Group(
			attr("class", el.Class),
			attr("data-topic", el.Key),
			attr("transform", fmt.Sprintf("translate(%d, %d)", px(el.X), px(el.Y))))
		for _, child := range scene.Children(id) {
			writeElement(canvas, scene, child)
		}
		canvas.Gend()
	}
}

// attr formats one escaped attribute. svgo passes strings containing "="
// through as attributes rather than style.
func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func px(v float64) int { return int(math.Round(v)) }

// num formats a style value with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
