// SPDX-License-Identifier: MIT

package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/meshwalk/queue"
	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

type walkStep struct {
	Step  int `yaml:"step"`
	Index int `yaml:"index"`
	Depth int `yaml:"depth"`
}

type walkReport struct {
	Mesh  meshSpec    `yaml:"mesh"`
	Kind  string      `yaml:"kind"`
	Order string      `yaml:"order"`
	Root  int         `yaml:"root"`
	Stats visit.Stats `yaml:"stats"`
	Steps []walkStep  `yaml:"steps"`
}

// orderByName maps an --order value to a visit.Order.
func orderByName(name string, seed int64) (visit.Order[int], error) {
	switch name {
	case "arbitrary":
		return visit.Arbitrary[int](), nil
	case "breadth":
		return visit.BreadthFirst[int](), nil
	case "depth":
		return visit.DepthFirst[int](), nil
	case "random":
		return visit.Random[int](queue.SeededRand(seed)), nil
	default:
		return nil, errors.Errorf("unknown order %q (want arbitrary, breadth, depth or random)", name)
	}
}

// walkFrom records every visited element of one traversal.
func walkFrom[E any](adj visit.Adjacency[E], order visit.Order[int], root E, internal bool, opts ...visit.Option) ([]walkStep, visit.Stats, error) {
	var steps []walkStep
	stats, err := visit.Walk(adj, order, visit.Roots[int](root), func(v *visit.Visitor[E, int]) {
		steps = append(steps, walkStep{Step: len(steps), Index: adj.Key(v.Element()), Depth: v.Depth()})
		if internal {
			v.VisitInternalNeighbors()
			return
		}
		v.VisitAllNeighbors()
	}, opts...)
	return steps, stats, err
}

// NewWalkCmd returns the command that prints the visit order of a traversal.
func NewWalkCmd(v *viper.Viper) *cobra.Command {
	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "Walk vertices or faces from a root and print the visit order",
		Args:  cobra.NoArgs,
		Example: `meshwalk walk --shape grid --rows 3 --cols 3 --kind face --root 4 --order breadth
meshwalk walk --kind vertex --order random --seed 7 --max-depth 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := specFromConfig(v)
			top, err := spec.build()
			if err != nil {
				return err
			}
			order, err := orderByName(v.GetString("order"), v.GetInt64("seed"))
			if err != nil {
				return err
			}
			opts := append(traceOptions(cmd), visit.WithMaxDepth(v.GetInt("max-depth")))
			root, internal := v.GetInt("root"), v.GetBool("internal")

			rep := walkReport{Mesh: spec, Kind: v.GetString("kind"), Order: v.GetString("order"), Root: root}
			switch rep.Kind {
			case "vertex":
				if err := checkIndex("vertex", root, top.VertexCount()); err != nil {
					return err
				}
				rep.Steps, rep.Stats, err = walkFrom[topology.Vertex](visit.VertexKind{}, order, top.Vertex(root), internal, opts...)
			case "face":
				if err := checkIndex("face", root, top.FaceCount()); err != nil {
					return err
				}
				rep.Steps, rep.Stats, err = walkFrom[topology.Face](visit.FaceKind{}, order, top.Face(root), internal, opts...)
			default:
				return errors.Errorf("unknown kind %q (want vertex or face)", rep.Kind)
			}
			if err != nil {
				return errors.Wrap(err, "walk")
			}

			rows := make([][]string, 0, len(rep.Steps))
			for _, s := range rep.Steps {
				rows = append(rows, []string{strconv.Itoa(s.Step), strconv.Itoa(s.Index), strconv.Itoa(s.Depth)})
			}
			return render(cmd.OutOrStdout(), v.GetString("output"), rep, []string{"step", rep.Kind, "depth"}, rows)
		},
	}
	f := walkCmd.Flags()
	f.String("kind", "vertex", "element kind: vertex or face")
	f.String("order", "breadth", "visit order: arbitrary, breadth, depth or random")
	f.Int("root", 0, "root element index")
	f.Int64("seed", 1, "random order seed")
	f.Int("max-depth", 0, "deepest depth to visit (0 = unlimited)")
	f.Bool("internal", false, "only cross interior edges / enter internal faces")
	return walkCmd
}
