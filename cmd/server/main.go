package main

import (
	"bytes"
	"flag"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	spherolization "github.com/mammaspappa/Spherolization"
)

var mesh *spherolization.Mesh

var (
	seed       int64   = 12345
	numPoints  int     = 1000
	radius     float64 = 1.0
	jitter     float64 = 0.0
	useTrimmer bool    = false
	addr       string  = ":3333"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the mesh seed")
	flag.IntVar(&numPoints, "num_points", numPoints, "number of points")
	flag.Float64Var(&radius, "radius", radius, "sphere radius")
	flag.Float64Var(&jitter, "jitter", jitter, "jitter")
	flag.BoolVar(&useTrimmer, "use_trimmer", useTrimmer, "use the k-nearest trim backend")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := spherolization.NewConfig()
	cfg.NumPoints = numPoints
	cfg.Radius = radius
	cfg.Jitter = jitter
	if useTrimmer {
		cfg.Backend = spherolization.BackendKNearestTrim
	}

	// Build the mesh.
	m, err := spherolization.NewMesh(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}
	mesh = m

	// Start the server.
	router := mux.NewRouter()
	router.HandleFunc("/geojson_vertices", geoJSONVerticesHandler)
	router.HandleFunc("/geojson_edges", geoJSONEdgesHandler)
	router.HandleFunc("/image/{zoom}", imageHandler)
	router.HandleFunc("/nearest/{lat}/{lon}", nearestHandler)
	log.Fatal(http.ListenAndServe(addr, router))
}

func geoJSONVerticesHandler(res http.ResponseWriter, req *http.Request) {
	data, err := mesh.GetGeoJSONVertices()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Write(data)
}

func geoJSONEdgesHandler(res http.ResponseWriter, req *http.Request) {
	data, err := mesh.GetGeoJSONEdges()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Write(data)
}

func imageHandler(res http.ResponseWriter, req *http.Request) {
	zoom, err := strconv.Atoi(mux.Vars(req)["zoom"])
	if err != nil || zoom < 0 || zoom > 6 {
		http.Error(res, "invalid zoom", http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, mesh.GetImage(zoom)); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Write(buf.Bytes())
}

func nearestHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	lat, err := strconv.ParseFloat(vars["lat"], 64)
	if err != nil {
		http.Error(res, "invalid latitude", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(vars["lon"], 64)
	if err != nil {
		http.Error(res, "invalid longitude", http.StatusBadRequest)
		return
	}
	idx, ok := mesh.NearestVertex(lat, lon)
	if !ok {
		http.Error(res, "no vertex found", http.StatusNotFound)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Write([]byte(strconv.Itoa(idx)))
}
