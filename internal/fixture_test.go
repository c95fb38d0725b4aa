package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds the first polygon element, reads its
// points, and closes the ring. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

// Every fixture here is convex
var convexFixtures = []string{
	"triangle",
	"right_triangle",
	"obtuse_triangle",
	"square",
	"pentagon",
	"hexagon",
	"heptagon",
}

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	points := make([]Point, 0, len(pointStrings)+1)
	for _, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
		}
		points = append(points, Point{x, y})
	}
	// SVG rings are implicitly closed
	points = append(points, points[0])

	poly, err := NewPolygon(points)
	if err != nil {
		log.Fatalf("Fixture %q is not a valid polygon: %v", name, err)
	}
	return poly
}

// Small helper for polygons written inline in tests.
func mustPolygon(points ...Point) *Polygon {
	poly, err := NewPolygon(points)
	if err != nil {
		panic(err)
	}
	return poly
}
