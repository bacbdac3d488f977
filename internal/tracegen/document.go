package tracegen

// Document is the MDS_Trace v1.0 document emitted by the generator. The
// arbiter reads a tolerant subset of this shape; downstream consumers may
// read all of it.
type Document struct {
	Schema       Schema    `json:"schema"`
	IDs          IDs       `json:"ids"`
	CreatedAt    string    `json:"created_at"`
	Source       Source    `json:"source"`
	NonGoverning bool      `json:"non_governing"`
	Segments     []Segment `json:"segments"`
	Aggregate    Aggregate `json:"aggregate"`
}

type Schema struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type IDs struct {
	ContentID string `json:"content_id"`
	TraceID   string `json:"trace_id"`
}

type Source struct {
	Title           string `json:"title"`
	Kind            string `json:"kind"`
	CanonicalStatus string `json:"canonical_status"`
}

// Segment is one scored span of the input text. Text is only embedded when
// the generator is asked to include it; the default output carries structure
// without content.
type Segment struct {
	ID   string       `json:"id"`
	Span Span         `json:"span"`
	Text string       `json:"text,omitempty"`
	D    DensityProxy `json:"D_proxy"`
	L    LeakProxy    `json:"L_proxy"`
	ESC  ClosureProxy `json:"ESC_proxy"`
	R    EchoProxy    `json:"R_proxy"`
}

type Span struct {
	StartChar int `json:"start_char"`
	EndChar   int `json:"end_char"`
}

type DensityProxy struct {
	Score float64 `json:"score"`
}

type LeakProxy struct {
	Score float64 `json:"score"`
}

type ClosureProxy struct {
	Dependency string  `json:"dependency"`
	Score      float64 `json:"score"`
}

type EchoProxy struct {
	Strength   float64  `json:"strength"`
	Sign       string   `json:"sign"`
	Signatures []string `json:"signatures"`
	EchoLinks  []string `json:"echo_links"`
}

type Aggregate struct {
	SegmentCount int       `json:"segment_count"`
	EchoGraph    EchoGraph `json:"echo_graph"`
}

type EchoGraph struct {
	Nodes   []string `json:"nodes"`
	Edges   []string `json:"edges"`
	Density float64  `json:"density"`
}
