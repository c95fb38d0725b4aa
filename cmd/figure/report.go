package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/figure"
)

// Human readable report of every measure and construction of a figure.
type reporter struct {
	w     io.Writer
	color bool
	err   error
}

func (r *reporter) label(s string) string {
	if !r.color {
		return s
	}
	return aurora.Bold(aurora.Cyan(s)).String()
}

func (r *reporter) failure(err error) string {
	if !r.color {
		return err.Error()
	}
	return aurora.Red(err.Error()).String()
}

// Write one "label value" line. After the first write error, nothing more is
// written and the error is kept for report to return.
func (r *reporter) line(label string, value interface{}) {
	if r.err != nil {
		return
	}
	padding := strings.Repeat(" ", max(1, 14-len(label)))
	_, r.err = fmt.Fprintf(r.w, "  %s%s%v\n", r.label(label), padding, value)
}

func (r *reporter) valueOrError(value interface{}, err error) interface{} {
	if err != nil {
		return r.failure(err)
	}
	return value
}

func (r *reporter) report(name string, poly *figure.Polygon, points []figure.Point) error {
	if _, err := fmt.Fprintf(r.w, "%s\n", r.label(name)); err != nil {
		return err
	}
	r.line("wkt", poly)
	r.line("sides", poly.SideCount())
	r.line("kind", poly.Classify())
	r.line("area", poly.Area())
	r.line("perimeter", poly.Perimeter())
	r.line("centroid", poly.Centroid())

	for i := 0; i < poly.SideCount(); i++ {
		v, err := poly.VertexAt(i)
		r.line(fmt.Sprintf("vertex %d", i), r.valueOrError(v, err))
	}
	for i := 0; i < poly.SideCount(); i++ {
		m, err := figure.MidpointOfSide(poly, i)
		r.line(fmt.Sprintf("midpoint %d", i), r.valueOrError(m, err))
		l, err := figure.MediatrixOfSide(poly, i)
		r.line(fmt.Sprintf("mediatrix %d", i), r.valueOrError(l, err))
	}
	for _, p := range points {
		r.line("locate", fmt.Sprintf("%v %v", p, poly.Locate(p)))
	}

	if poly.Classify() == figure.KindTriangle {
		for i := 0; i < 3; i++ {
			l, err := figure.AltitudeFromVertex(poly, i)
			r.line(fmt.Sprintf("altitude %d", i), r.valueOrError(l, err))
		}
		o, err := figure.Orthocenter(poly)
		r.line("orthocenter", r.valueOrError(o, err))
	}
	return r.err
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
