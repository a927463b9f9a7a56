package scene

// Object is a single node in the live object graph. The save core only ever
// reads objects; spawning, parenting and destruction belong to the host
// engine.
type Object struct {
	name       string
	parent     *Object
	children   []*Object
	components []any
}

// NewObject creates a detached object with no components.
func NewObject(name string) *Object {
	return &Object{name: name}
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Parent() *Object {
	return o.parent
}

func (o *Object) Children() []*Object {
	return o.children
}

// Attach adds a component to the object and returns the object for chaining.
func (o *Object) Attach(component any) *Object {
	o.components = append(o.components, component)
	return o
}

// Components returns the attached components in attachment order.
func (o *Object) Components() []any {
	return o.components
}

// AddChild parents child under o. A child keeps its components; only the
// hierarchy changes.
func (o *Object) AddChild(child *Object) *Object {
	child.parent = o
	o.children = append(o.children, child)
	return o
}

// Descendants returns the object itself followed by every descendant,
// depth-first in attachment order. This is the scan order every identity
// lookup observes.
func (o *Object) Descendants() []*Object {
	out := []*Object{o}
	for _, child := range o.children {
		out = append(out, child.Descendants()...)
	}
	return out
}

// Graph is the live object graph the save core queries. Implementations are
// expected to report objects in a stable construction order.
type Graph interface {
	Objects() []*Object
}

// MemoryGraph is an in-memory Graph used by tests and by hosts that manage
// their own scene structure.
type MemoryGraph struct {
	roots []*Object
}

var _ Graph = (*MemoryGraph)(nil)

func NewMemoryGraph(roots ...*Object) *MemoryGraph {
	return &MemoryGraph{roots: roots}
}

// Add appends a new root object to the graph.
func (g *MemoryGraph) Add(root *Object) {
	g.roots = append(g.roots, root)
}

// Objects implements Graph. Roots come first in insertion order, each followed
// by its subtree.
func (g *MemoryGraph) Objects() []*Object {
	var out []*Object
	for _, root := range g.roots {
		out = append(out, root.Descendants()...)
	}
	return out
}

// ComponentOf returns the first component of obj assignable to T.
func ComponentOf[T any](obj *Object) (T, bool) {
	for _, c := range obj.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// ComponentsOf returns every component of obj assignable to T, in attachment
// order.
func ComponentsOf[T any](obj *Object) []T {
	var out []T
	for _, c := range obj.components {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
