package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/pkg/errors"
)

// A small well known text reader. It understands the subset of the grammar
// that figures can be built from: POINT, two point LINESTRINGs, and POLYGONs
// with a single ring, all in XY. Output is the String() method of each type.
//
// Functions starting with 'next' consume token(s) and build the next
// production in the grammar.

// Geometry is one of Point, Line or *Polygon.
type Geometry interface {
	String() string
}

func ParseWKT(wkt string) (Geometry, error) {
	p := newWKTParser(wkt)
	g, err := p.nextGeometryTaggedText()
	if err == nil {
		err = p.checkEOF()
	}
	if errors.Cause(err) == ErrInvalidGeometry {
		return nil, errors.Wrap(err, "wkt")
	}
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidGeometry, "wkt: %v", err)
	}
	return g, nil
}

func ParsePolygonWKT(wkt string) (*Polygon, error) {
	g, err := ParseWKT(wkt)
	if err != nil {
		return nil, err
	}
	poly, ok := g.(*Polygon)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidGeometry, "wkt: expected POLYGON, got %q", wkt)
	}
	return poly, nil
}

func ParsePointWKT(wkt string) (Point, error) {
	g, err := ParseWKT(wkt)
	if err != nil {
		return Point{}, err
	}
	p, ok := g.(Point)
	if !ok {
		return Point{}, errors.Wrapf(ErrInvalidGeometry, "wkt: expected POINT, got %q", wkt)
	}
	return p, nil
}

type wktParser struct {
	scanner scanner.Scanner
	err     error
	peeked  *string
}

func newWKTParser(wkt string) *wktParser {
	p := &wktParser{}
	p.scanner.Init(strings.NewReader(wkt))
	p.scanner.Mode = scanner.ScanIdents | scanner.ScanFloats
	p.scanner.Error = func(_ *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = errors.New(msg)
		}
	}
	return p
}

// Tokens are returned as text. The empty string means end of input.
func (p *wktParser) nextToken() (string, error) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, nil
	}
	r := p.scanner.Scan()
	if p.err != nil {
		return "", p.err
	}
	if r == scanner.EOF {
		return "", nil
	}
	return p.scanner.TokenText(), nil
}

func (p *wktParser) peekToken() (string, error) {
	tok, err := p.nextToken()
	if err != nil {
		return "", err
	}
	p.peeked = &tok
	return tok, nil
}

func (p *wktParser) checkEOF() error {
	tok, err := p.nextToken()
	if err != nil {
		return err
	}
	if tok != "" {
		return fmt.Errorf("expected EOF but encountered %v", tok)
	}
	return nil
}

func (p *wktParser) nextExpected(expected string) error {
	tok, err := p.nextToken()
	if err != nil {
		return err
	}
	if tok != expected {
		return fmt.Errorf("expected %q but encountered %q", expected, tok)
	}
	return nil
}

func (p *wktParser) nextGeometryTaggedText() (Geometry, error) {
	tag, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	ctype, err := p.peekToken()
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(ctype) {
	case "Z", "M", "ZM":
		return nil, fmt.Errorf("only XY coordinates are supported, got %s %s", tag, ctype)
	case "EMPTY":
		return nil, fmt.Errorf("empty %s", tag)
	}

	switch strings.ToUpper(tag) {
	case "POINT":
		return p.nextPointText()
	case "LINESTRING":
		return p.nextLineStringText()
	case "POLYGON":
		return p.nextPolygonText()
	case "":
		return nil, errors.New("empty input")
	default:
		return nil, fmt.Errorf("unsupported geometry type: %v", tag)
	}
}

func (p *wktParser) nextSignedNumericLiteral() (float64, error) {
	var negative bool
	tok, err := p.nextToken()
	if err != nil {
		return 0, err
	}
	if tok == "-" || tok == "+" {
		negative = tok == "-"
		tok, err = p.nextToken()
		if err != nil {
			return 0, err
		}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid signed numeric literal: %q", tok)
	}
	// NaNs and Infs are not allowed by the WKT grammar.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid signed numeric literal: %s", tok)
	}
	if negative {
		f = -f
	}
	return f, nil
}

func (p *wktParser) nextPoint() (Point, error) {
	x, err := p.nextSignedNumericLiteral()
	if err != nil {
		return Point{}, err
	}
	y, err := p.nextSignedNumericLiteral()
	if err != nil {
		return Point{}, err
	}
	return Point{x, y}, nil
}

func (p *wktParser) nextPointText() (Point, error) {
	if err := p.nextExpected("("); err != nil {
		return Point{}, err
	}
	pt, err := p.nextPoint()
	if err != nil {
		return Point{}, err
	}
	return pt, p.nextExpected(")")
}

// A parenthesised, comma separated list of points.
func (p *wktParser) nextPointList() ([]Point, error) {
	if err := p.nextExpected("("); err != nil {
		return nil, err
	}
	var points []Point
	for {
		pt, err := p.nextPoint()
		if err != nil {
			return nil, err
		}
		points = append(points, pt)

		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if tok == ")" {
			return points, nil
		}
		if tok != "," {
			return nil, fmt.Errorf("unexpected token: %q", tok)
		}
	}
}

func (p *wktParser) nextLineStringText() (Line, error) {
	points, err := p.nextPointList()
	if err != nil {
		return Line{}, err
	}
	if len(points) != 2 {
		return Line{}, fmt.Errorf("line needs exactly 2 points, got %d", len(points))
	}
	return Line{points[0], points[1]}, nil
}

func (p *wktParser) nextPolygonText() (*Polygon, error) {
	if err := p.nextExpected("("); err != nil {
		return nil, err
	}
	ring, err := p.nextPointList()
	if err != nil {
		return nil, err
	}
	tok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	if tok == "," {
		return nil, errors.New("polygons with holes are not supported")
	}
	if tok != ")" {
		return nil, fmt.Errorf("expected \")\" but encountered %q", tok)
	}
	return NewPolygon(ring)
}
