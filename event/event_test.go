package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent(t *testing.T) {
	var ev Event
	assert.Empty(t, ev.Vertices())
	assert.Equal(t, 0, ev.Primaries())

	v1 := &Vertex{T: 1, X: 2, Y: 3, Z: 4}
	v1.Primaries = append(v1.Primaries, Primary{ID: 13, Px: 3, Py: 4})
	ev.AddVertex(v1)

	v2 := &Vertex{T: 5}
	v2.Primaries = append(v2.Primaries,
		Primary{ID: -13, Pz: 1},
		Primary{ID: 22, Px: 7},
	)
	ev.AddVertex(v2)

	vs := ev.Vertices()
	assert.Len(t, vs, 2)
	assert.Same(t, v1, vs[0])
	assert.Same(t, v2, vs[1])
	assert.Equal(t, 3, ev.Primaries())
	assert.Equal(t, Primary{ID: 13, Px: 3, Py: 4}, vs[0].Primaries[0])
}
