// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meshwalk/builder"
	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

const (
	shapePolygon = "polygon"
	shapeFan     = "fan"
	shapeGrid    = "grid"
	shapeTriGrid = "trigrid"
	shapeHexGrid = "hexgrid"
)

// meshSpec is the mesh the shared flags describe.
type meshSpec struct {
	Shape string `yaml:"shape"`
	Rows  int    `yaml:"rows,omitempty"`
	Cols  int    `yaml:"cols,omitempty"`
	Sides int    `yaml:"sides,omitempty"`
}

func specFromConfig(v *viper.Viper) meshSpec {
	s := meshSpec{Shape: strings.ToLower(v.GetString("shape"))}
	switch s.Shape {
	case shapePolygon, shapeFan:
		s.Sides = v.GetInt("sides")
	default:
		s.Rows, s.Cols = v.GetInt("rows"), v.GetInt("cols")
	}
	return s
}

// build turns the spec into a topology.
func (s meshSpec) build() (*topology.Topology, error) {
	var c builder.Constructor
	switch s.Shape {
	case shapePolygon:
		c = builder.Polygon(s.Sides)
	case shapeFan:
		c = builder.Fan(s.Sides)
	case shapeGrid:
		c = builder.Grid(s.Rows, s.Cols)
	case shapeTriGrid:
		c = builder.TriGrid(s.Rows, s.Cols)
	case shapeHexGrid:
		c = builder.HexGrid(s.Rows, s.Cols)
	default:
		return nil, errors.Errorf("unknown shape %q", s.Shape)
	}
	top, err := builder.Build(c)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s mesh", s.Shape)
	}
	logrus.WithFields(logrus.Fields{
		"shape":    s.Shape,
		"vertices": top.VertexCount(),
		"faces":    top.InternalFaceCount(),
	}).Debug("mesh built")
	return top, nil
}

// traceOptions routes engine debug entries to the standard logger.
func traceOptions(cmd *cobra.Command) []visit.Option {
	return []visit.Option{visit.WithLogger(logrus.WithField("command", cmd.Name()))}
}

// render writes doc as YAML, or header and rows as a table.
func render(w io.Writer, format string, doc interface{}, header []string, rows [][]string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	case formatTable, "":
		table := tablewriter.NewWriter(w)
		table.SetHeader(header)
		table.AppendBulk(rows)
		table.Render()
		return nil
	default:
		return errors.Errorf("unknown output format %q (want %s or %s)", format, formatTable, formatYAML)
	}
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return errors.Errorf("%s %d out of range [0, %d)", what, i, n)
	}
	return nil
}
