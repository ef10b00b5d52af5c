package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	spherolization "github.com/mammaspappa/Spherolization"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed      int64   = 1234
	numPoints int     = 1000
	radius    float64 = 1.0
	jitter    float64 = 0.0
	backend   string  = "delaunay"
	validate  bool    = true
	exportPNG bool    = false
	exportGeo bool    = false
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the mesh seed")
	flag.IntVar(&numPoints, "num_points", numPoints, "number of points")
	flag.Float64Var(&radius, "radius", radius, "sphere radius")
	flag.Float64Var(&jitter, "jitter", jitter, "jitter")
	flag.StringVar(&backend, "backend", backend, "graph backend (delaunay or knearest)")
	flag.BoolVar(&validate, "validate", validate, "run topology validation")
	flag.BoolVar(&exportPNG, "export_png", exportPNG, "export mesh.png")
	flag.BoolVar(&exportGeo, "export_geojson", exportGeo, "export mesh.geojson")
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := spherolization.NewConfig()
	cfg.NumPoints = numPoints
	cfg.Radius = radius
	cfg.Jitter = jitter
	if backend == "knearest" {
		cfg.Backend = spherolization.BackendKNearestTrim
	}

	m, err := spherolization.NewMesh(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("generated %d points, %d edges, %d pentagons (backend %s)",
		m.NumPoints(), len(m.Graph.Edges), m.PentagonCount(), cfg.Backend)

	if validate {
		diag := m.Validate()
		if diag.HasAnomalies() {
			for _, w := range diag.Warnings {
				log.Println("validation:", w)
			}
		} else {
			log.Println("validation: no anomalies")
		}
	}

	if exportPNG {
		if err := m.ExportPng("mesh.png"); err != nil {
			log.Fatal(err)
		}
	}
	if exportGeo {
		data, err := m.GetGeoJSONEdges()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile("mesh.geojson", data, 0644); err != nil {
			log.Fatal(err)
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
