package main

import (
	"io"
	"os"
	"strings"

	"github.com/osuushi/figure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line driver for the figure package. It can describe a single figure
// given as WKT or GeoJSON, run the demo over a set of figures from a TOML
// config, and render a figure with its construction lines to a PNG.
var (
	app     = kingpin.New("figure", "Measure planar polygons and build their mediatrices, altitudes and orthocenter.")
	verbose = app.Flag("verbose", "Log every step.").Short('v').Bool()
	noColor = app.Flag("no-color", "Do not colour the report.").Bool()

	describeCmd     = app.Command("describe", "Report on one figure. Reads stdin when no figure is given.")
	describeInput   = describeCmd.Arg("figure", "POLYGON in WKT, or GeoJSON with --geojson.").String()
	describeGeoJSON = describeCmd.Flag("geojson", "Input is a GeoJSON Polygon geometry.").Bool()
	describePoints  = describeCmd.Flag("point", "POINT in WKT to locate relative to the figure. Repeatable.").Strings()

	demoCmd    = app.Command("demo", "Report on every figure in a config file, or the built in demo figures.")
	demoConfig = demoCmd.Flag("config", "TOML file listing the figures.").String()

	drawCmd         = app.Command("draw", "Render a figure to a PNG.")
	drawInput       = drawCmd.Arg("figure", "POLYGON in WKT.").Required().String()
	drawOut         = drawCmd.Flag("out", "PNG file to write.").Short('o').Default("figure.png").String()
	drawScale       = drawCmd.Flag("scale", "Pixels per unit.").Default("20").Float64()
	drawMediatrices = drawCmd.Flag("mediatrices", "Draw the mediatrix of every side.").Bool()
	drawAltitudes   = drawCmd.Flag("altitudes", "Draw the altitudes of a triangle.").Bool()
	drawImgcat      = drawCmd.Flag("imgcat", "Show the image in the terminal afterwards.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch command {
	case describeCmd.FullCommand():
		err = runDescribe(log, os.Stdin, os.Stdout)
	case demoCmd.FullCommand():
		err = runDemo(log, *demoConfig, os.Stdout, !*noColor)
	case drawCmd.FullCommand():
		err = runDraw(log)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runDescribe(log logrus.FieldLogger, stdin io.Reader, stdout io.Writer) error {
	input := *describeInput
	if input == "" {
		log.Debug("reading figure from stdin")
		data, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
		input = strings.TrimSpace(string(data))
	}

	var poly *figure.Polygon
	var err error
	if *describeGeoJSON {
		poly, err = figure.UnmarshalPolygonGeoJSON([]byte(input))
	} else {
		poly, err = figure.ParsePolygonWKT(input)
	}
	if err != nil {
		return err
	}
	points, err := parsePoints(*describePoints)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"kind":  poly.Classify(),
		"sides": poly.SideCount(),
	}).Debug("parsed figure")

	r := &reporter{w: stdout, color: !*noColor}
	return r.report("figure", poly, points)
}

func runDemo(log logrus.FieldLogger, configPath string, stdout io.Writer, color bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	log.WithField("figures", len(cfg.Figures)).Debug("loaded config")

	r := &reporter{w: stdout, color: color}
	for _, fc := range cfg.Figures {
		poly, points, err := fc.build()
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"name":    fc.Name,
			"kind":    poly.Classify(),
			"sides":   poly.SideCount(),
			"inserts": len(fc.Inserts),
		}).Debug("built figure")

		if err := r.report(fc.Name, poly, points); err != nil {
			return err
		}
		if err := poly.Print(stdout); err != nil {
			return err
		}
	}
	return nil
}

func runDraw(log logrus.FieldLogger) error {
	poly, err := figure.ParsePolygonWKT(*drawInput)
	if err != nil {
		return err
	}

	var lines []figure.Line
	if *drawMediatrices {
		for i := 0; i < poly.SideCount(); i++ {
			l, err := figure.MediatrixOfSide(poly, i)
			if err != nil {
				log.WithField("side", i).Warn(err)
				continue
			}
			lines = append(lines, l)
		}
	}
	if *drawAltitudes {
		for i := 0; i < poly.SideCount(); i++ {
			l, err := figure.AltitudeFromVertex(poly, i)
			if err != nil {
				return err
			}
			lines = append(lines, l)
		}
	}

	if err := figure.SavePNG(*drawOut, poly, lines, *drawScale); err != nil {
		return errors.Wrapf(err, "writing %s", *drawOut)
	}
	log.WithFields(logrus.Fields{
		"out":   *drawOut,
		"lines": len(lines),
	}).Info("wrote figure")

	if *drawImgcat {
		figure.CatPNG(*drawOut, os.Stdout)
	}
	return nil
}
