// SPDX-License-Identifier: MIT

package builder

// Constructor names used as error context.
const (
	MethodPolygon = "Polygon"
	MethodFan     = "Fan"
	MethodGrid    = "Grid"
	MethodTriGrid = "TriGrid"
	MethodHexGrid = "HexGrid"
)

// MinPolygonSides is the smallest polygon (and fan rim) a constructor accepts.
const MinPolygonSides = 3

// MinGridDim is the smallest row or column count of any grid constructor.
const MinGridDim = 1
