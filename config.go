package spherolization

// Backend selects the neighbor graph construction strategy. Both strategies
// produce the same edge list / neighbor list shape, so everything downstream
// of the builder is backend-agnostic.
type Backend int

const (
	// BackendDelaunay computes the exact spherical Delaunay triangulation
	// via stereographic projection. Planar by construction; valence emerges
	// from the triangulation without trimming.
	BackendDelaunay Backend = iota

	// BackendKNearestTrim unions the k-nearest candidate sets of every
	// point and iteratively trims high-valence vertices. Approximate: it
	// guarantees neither planarity nor the 12-pentagon property.
	BackendKNearestTrim
)

func (b Backend) String() string {
	switch b {
	case BackendDelaunay:
		return "delaunay"
	case BackendKNearestTrim:
		return "knearest-trim"
	}
	return "unknown"
}

// Default tuning constants for mesh generation.
const (
	DefaultFillRatio     = 1.0 / 3 // apex inset fraction for edge triangles
	DefaultSearchK       = 8       // candidate pool per point (trim backend)
	DefaultMaxDegree     = 7       // hard valence cap enforced by trimming
	DefaultTargetDegree  = 6       // ideal (hexagonal) valence
	DefaultTrimMaxPasses = 100     // full trim passes before giving up
	DefaultProjectionEps = 1e-6    // denominator floor at the projection pole
)

// Config holds all tunable parameters for mesh generation.
type Config struct {
	NumPoints int     // Number of generated points / vertices
	Radius    float64 // Sphere radius
	Jitter    float64 // Jitter factor (randomness in point distribution)
	Backend   Backend // Neighbor graph construction strategy
	FillRatio float64 // Apex inset fraction for edge triangles

	// K-nearest union + trim backend tuning.
	SearchK       int // Initial candidate pool per point
	MaxDegree     int // Hard valence cap enforced by trimming
	TargetDegree  int // Ideal valence of a hexagonal vertex
	TrimMaxPasses int // Full trim passes before reporting non-convergence

	// Stereographic Delaunay backend tuning.
	ProjectionEps float64 // Denominator floor at the projection pole
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		NumPoints:     1000,
		Radius:        1.0,
		Jitter:        0.0,
		Backend:       BackendDelaunay,
		FillRatio:     DefaultFillRatio,
		SearchK:       DefaultSearchK,
		MaxDegree:     DefaultMaxDegree,
		TargetDegree:  DefaultTargetDegree,
		TrimMaxPasses: DefaultTrimMaxPasses,
		ProjectionEps: DefaultProjectionEps,
	}
}
