/*package event holds the in-process simulation event: primary vertices and
the primary particles attached to them. It is the hand-off point between the
kinematic records and whatever runs the event afterwards.
*/
package event

// Primary is the initial state of one generated particle: a species id and
// its Cartesian momentum in MeV.
type Primary struct {
	ID         int
	Px, Py, Pz float64
}

// Vertex is a primary vertex: a spacetime point (ns, mm) and the primaries
// that originate from it.
type Vertex struct {
	T, X, Y, Z float64
	Primaries  []Primary
}

// Event collects the primary vertices of one simulated event. The zero value
// is an empty event ready for use. Events are not safe for concurrent
// mutation; each worker owns its own.
type Event struct {
	vertices []*Vertex
}

// AddVertex registers v with the event. The event owns v afterwards; the
// caller must not hold on to it.
func (e *Event) AddVertex(v *Vertex) {
	e.vertices = append(e.vertices, v)
}

// Vertices returns the registered vertices in insertion order. The returned
// slice is the event's backing store, not a copy.
func (e *Event) Vertices() []*Vertex { return e.vertices }

// Primaries counts the primary particles across all vertices.
func (e *Event) Primaries() int {
	n := 0
	for _, v := range e.vertices {
		n += len(v.Primaries)
	}
	return n
}
