package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/beetlebugorg/spatialite/pkg/spatialite"
)

func describeGeometry(geom *spatialite.Geometry) {
	switch geom.Kind {
	case spatialite.Point:
		fmt.Printf("Point: %.6f, %.6f\n", geom.Sequence.X[0], geom.Sequence.Y[0])

	case spatialite.LineString:
		fmt.Printf("LineString with %d points:\n", geom.Sequence.Len())
		for i := 0; i < geom.Sequence.Len(); i++ {
			fmt.Printf("  %d: %.6f, %.6f\n", i, geom.Sequence.X[i], geom.Sequence.Y[i])
		}

	case spatialite.Polygon:
		shell := geom.Rings[0]
		fmt.Printf("Polygon with %d rings, shell has %d vertices:\n", len(geom.Rings), shell.Len())
		for i := 0; i < shell.Len(); i++ {
			fmt.Printf("  %d: %.6f, %.6f\n", i, shell.X[i], shell.Y[i])
		}

	default:
		fmt.Printf("%s with %d children\n", geom.Kind, len(geom.Children))
		for i := range geom.Children {
			describeGeometry(&geom.Children[i])
		}
	}
}

// lineLength sums the planar distance between consecutive vertices; it
// does not account for geodesic curvature, matching the precision the
// caller's own precision model already bounded.
func lineLength(seq *spatialite.CoordinateSequence) float64 {
	length := 0.0
	for i := 1; i < seq.Len(); i++ {
		dx := seq.X[i] - seq.X[i-1]
		dy := seq.Y[i] - seq.Y[i-1]
		length += math.Sqrt(dx*dx + dy*dy)
	}
	return length
}

func main() {
	reader := spatialite.NewReader(spatialite.DefaultReaderOptions())
	writer := spatialite.NewWriter(spatialite.DefaultWriterOptions())

	line := &spatialite.Geometry{
		Kind: spatialite.LineString,
		Sequence: &spatialite.CoordinateSequence{
			Dimension: spatialite.XY,
			X:         []float64{-71.05, -71.04, -71.02},
			Y:         []float64{42.36, 42.37, 42.39},
		},
	}
	blob, err := writer.Write(line, 4326, spatialite.Little, true)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.ToUpper(hex.EncodeToString(blob))[:12] + "...")

	geom, err := reader.Read(blob)
	if err != nil {
		log.Fatal(err)
	}

	describeGeometry(geom)
	fmt.Printf("Length: %.6f degrees\n", lineLength(geom.Sequence))
}
