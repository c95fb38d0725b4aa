package main

import (
	_ "embed"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/figure"
	"github.com/osuushi/figure/dbg"
	"github.com/pkg/errors"
)

//go:embed demo.toml
var defaultConfig string

// Config lists the figures processed by the demo command.
type Config struct {
	Figures []FigureConfig `toml:"figure"`
}

// FigureConfig describes one figure as WKT, plus the vertices to insert into
// it (applied in order) and the points to test for containment.
type FigureConfig struct {
	Name    string         `toml:"name"`
	WKT     string         `toml:"wkt"`
	Points  []string       `toml:"points"`
	Inserts []InsertConfig `toml:"insert"`
}

type InsertConfig struct {
	Point    string `toml:"point"`
	Position int    `toml:"position"`
}

// Load a config file, or the built in demo figures if path is empty.
func loadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if path == "" {
		if _, err := toml.Decode(defaultConfig, cfg); err != nil {
			return nil, errors.Wrap(err, "decoding built in demo config")
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	for i := range cfg.Figures {
		if cfg.Figures[i].Name == "" {
			cfg.Figures[i].Name = dbg.Name(cfg.Figures[i].WKT)
		}
	}
	return cfg, nil
}

// Build the polygon, with all inserts applied, and parse the test points.
func (fc FigureConfig) build() (*figure.Polygon, []figure.Point, error) {
	poly, err := figure.ParsePolygonWKT(fc.WKT)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "figure %s", fc.Name)
	}
	for _, insert := range fc.Inserts {
		p, err := figure.ParsePointWKT(insert.Point)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "figure %s: insert", fc.Name)
		}
		if err := poly.InsertVertexAt(p, insert.Position); err != nil {
			return nil, nil, errors.Wrapf(err, "figure %s: insert", fc.Name)
		}
	}
	points, err := parsePoints(fc.Points)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "figure %s", fc.Name)
	}
	return poly, points, nil
}

func parsePoints(wkts []string) ([]figure.Point, error) {
	points := make([]figure.Point, 0, len(wkts))
	for _, wkt := range wkts {
		p, err := figure.ParsePointWKT(wkt)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
