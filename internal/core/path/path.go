// Package path models movement paths and their compact save-file string form.
package path

// Vector3 is a point in world space.
type Vector3 struct {
	X, Y, Z float32
}

// Type describes how an agent walks a path once it reaches the end.
type Type int

const (
	ForwardOnly Type = iota
	Loop
	PingPong
	IsRandom
)

// Path is an ordered run of nodes plus the traversal settings an agent needs.
// It can be attached to a scene object as a component.
type Path struct {
	AffectY   bool
	Type      Type
	NodePause float32
	Nodes     []Vector3
}

// Reset restores the decode defaults: height changes honored, forward-only
// traversal, no pause, no nodes.
func (p *Path) Reset() {
	p.AffectY = true
	p.Type = ForwardOnly
	p.NodePause = 0
	p.Nodes = nil
}
