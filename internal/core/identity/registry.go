// Package identity recovers live object references from the stable integer
// identifiers persisted in save data.
package identity

import (
	"github.com/scenekit/scenekit/internal/core/observability/log"
	"github.com/scenekit/scenekit/internal/core/scene"
)

// Registry resolves persisted identifiers against a live object graph. It
// holds no state of its own; every lookup re-scans the graph, so bindings are
// always current even after objects are spawned or destroyed.
type Registry struct {
	graph scene.Graph
	log   log.Log
}

func NewRegistry(graph scene.Graph, logger log.Log) *Registry {
	return &Registry{
		graph: graph,
		log:   logger,
	}
}

// Resolve returns the first component of capability type T attached to an
// object whose ConstantID equals id. A zero id is "unset" and resolves to
// nothing without touching the graph.
func Resolve[T any](r *Registry, id int) (T, bool) {
	return resolveFirst[T](r.graph.Objects(), id)
}

// ResolveIn is Resolve restricted to the given scope object and its
// descendants. A nil scope falls back to the whole graph.
func ResolveIn[T any](r *Registry, id int, scope *scene.Object) (T, bool) {
	if scope == nil {
		return Resolve[T](r, id)
	}
	return resolveFirst[T](scope.Descendants(), id)
}

// ResolveChildren restricts the scan to root and its descendants. The
// matching rule is identical to Resolve.
func ResolveChildren[T any](r *Registry, id int, root *scene.Object) (T, bool) {
	return resolveFirst[T](root.Descendants(), id)
}

// ResolveMany collects every capability-T component whose object carries a
// matching ConstantID. Objects are deduplicated by reference, so an object
// tagged twice with the same identifier still contributes once.
func ResolveMany[T any](r *Registry, id int) []T {
	return resolveAll[T](r.graph.Objects(), id)
}

// ResolveManyIn is ResolveMany restricted to the given scope object and its
// descendants. A nil scope falls back to the whole graph.
func ResolveManyIn[T any](r *Registry, id int, scope *scene.Object) []T {
	if scope == nil {
		return ResolveMany[T](r, id)
	}
	return resolveAll[T](scope.Descendants(), id)
}

// IdentifierOf reports the object's ConstantID value. Objects without a tag,
// or tagged with zero, yield 0 together with an advisory warning naming the
// cause. Callers must treat 0 as "cannot be saved".
func (r *Registry) IdentifierOf(obj *scene.Object) int {
	tags := scene.ComponentsOf[*scene.ConstantID](obj)
	if len(tags) == 0 {
		r.log.Warn("object carries no ConstantID tag and cannot be recovered after load",
			log.String("object", obj.Name()))
		return 0
	}

	id := tags[0].ID
	if id == 0 {
		r.log.Warn("object's ConstantID is zero, which is reserved for unset",
			log.String("object", obj.Name()))
		return 0
	}
	return id
}

func resolveAll[T any](objects []*scene.Object, id int) []T {
	var out []T
	if id == 0 {
		return out
	}

	seen := make(map[*scene.Object]struct{})
	for _, obj := range objects {
		if _, dup := seen[obj]; dup {
			continue
		}
		comp, ok := scene.ComponentOf[T](obj)
		if !ok {
			continue
		}
		for _, tag := range scene.ComponentsOf[*scene.ConstantID](obj) {
			if tag.ID == id {
				seen[obj] = struct{}{}
				out = append(out, comp)
				break
			}
		}
	}
	return out
}

func resolveFirst[T any](objects []*scene.Object, id int) (T, bool) {
	var zero T
	if id == 0 {
		return zero, false
	}

	for _, obj := range objects {
		comp, ok := scene.ComponentOf[T](obj)
		if !ok {
			continue
		}
		for _, tag := range scene.ComponentsOf[*scene.ConstantID](obj) {
			if tag.ID == id {
				return comp, true
			}
		}
	}
	return zero, false
}
