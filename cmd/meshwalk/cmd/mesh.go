// SPDX-License-Identifier: MIT

package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/meshwalk/algorithms"
)

type meshReport struct {
	Mesh          meshSpec `yaml:"mesh"`
	Vertices      int      `yaml:"vertices"`
	HalfEdges     int      `yaml:"halfEdges"`
	InternalFaces int      `yaml:"internalFaces"`
	ExternalFaces int      `yaml:"externalFaces"`
	Components    int      `yaml:"components"`
}

// NewMeshCmd returns the command that builds a mesh and reports its counts.
func NewMeshCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "mesh",
		Short:   "Build a mesh and print its element counts",
		Args:    cobra.NoArgs,
		Example: `meshwalk mesh --shape hexgrid --rows 3 --cols 5 -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := specFromConfig(v)
			top, err := spec.build()
			if err != nil {
				return err
			}
			if err := top.Validate(); err != nil {
				return errors.Wrap(err, "validate mesh")
			}
			_, n, err := algorithms.Components(top, traceOptions(cmd)...)
			if err != nil {
				return errors.Wrap(err, "count components")
			}

			rep := meshReport{
				Mesh:          spec,
				Vertices:      top.VertexCount(),
				HalfEdges:     top.EdgeCount(),
				InternalFaces: top.InternalFaceCount(),
				ExternalFaces: top.ExternalFaceCount(),
				Components:    n,
			}
			rows := [][]string{
				{"vertices", strconv.Itoa(rep.Vertices)},
				{"half-edges", strconv.Itoa(rep.HalfEdges)},
				{"internal faces", strconv.Itoa(rep.InternalFaces)},
				{"external faces", strconv.Itoa(rep.ExternalFaces)},
				{"components", strconv.Itoa(rep.Components)},
			}
			return render(cmd.OutOrStdout(), v.GetString("output"), rep, []string{"element", "count"}, rows)
		},
	}
}
