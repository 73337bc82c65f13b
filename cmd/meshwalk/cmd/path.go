// SPDX-License-Identifier: MIT

package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/meshwalk/algorithms"
)

type pathReport struct {
	Mesh  meshSpec `yaml:"mesh"`
	From  int      `yaml:"from"`
	To    int      `yaml:"to"`
	Cost  float64  `yaml:"cost"`
	Faces []int    `yaml:"faces"`
}

// NewPathCmd returns the command that finds the fewest face crossings
// between two internal faces.
func NewPathCmd(v *viper.Viper) *cobra.Command {
	pathCmd := &cobra.Command{
		Use:     "path",
		Short:   "Print the shortest chain of faces between two faces",
		Args:    cobra.NoArgs,
		Example: `meshwalk path --shape trigrid --rows 4 --cols 4 --from 0 --to 31`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := specFromConfig(v)
			top, err := spec.build()
			if err != nil {
				return err
			}
			from, to := v.GetInt("from"), v.GetInt("to")
			for _, f := range []int{from, to} {
				if err := checkIndex("face", f, top.InternalFaceCount()); err != nil {
					return err
				}
			}

			path, cost, err := algorithms.ShortestFacePath(top.Face(from), top.Face(to), nil, traceOptions(cmd)...)
			if err != nil {
				return errors.Wrapf(err, "path %d to %d", from, to)
			}

			rep := pathReport{Mesh: spec, From: from, To: to, Cost: cost, Faces: []int{from}}
			rows := [][]string{{"0", strconv.Itoa(from), "-"}}
			for i, e := range path {
				far := e.FarFace().Index()
				rep.Faces = append(rep.Faces, far)
				rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(far), strconv.Itoa(e.Index())})
			}
			return render(cmd.OutOrStdout(), v.GetString("output"), rep, []string{"step", "face", "via edge"}, rows)
		},
	}
	f := pathCmd.Flags()
	f.Int("from", 0, "source face index")
	f.Int("to", 1, "destination face index")
	return pathCmd
}
