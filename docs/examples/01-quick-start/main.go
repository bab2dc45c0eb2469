package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/spatialite/pkg/spatialite"
)

func main() {
	boston := &spatialite.Geometry{
		Kind: spatialite.Point,
		Sequence: &spatialite.CoordinateSequence{
			Dimension: spatialite.XY,
			X:         []float64{-71.0589},
			Y:         []float64{42.3601},
		},
	}

	writer := spatialite.NewWriter(spatialite.DefaultWriterOptions())
	blob, err := writer.Write(boston, 4326, spatialite.Little, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("encoded blob: %d bytes\n", len(blob))

	reader := spatialite.NewReader(spatialite.DefaultReaderOptions())
	geom, err := reader.Read(blob)
	if err != nil {
		log.Fatal(err)
	}
	if geom == nil {
		log.Fatal("blob was rejected at the framing stage")
	}

	fmt.Printf("kind: %s\n", geom.Kind)
	fmt.Printf("srid: %d\n", geom.SRID)
	fmt.Printf("x, y: %.4f, %.4f\n", geom.Sequence.X[0], geom.Sequence.Y[0])
}
