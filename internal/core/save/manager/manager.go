// Package manager orchestrates whole save and load operations: capture state
// from the object graph, serialize it, file it under a slot, and reverse the
// trip on load.
package manager

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/scenekit/scenekit/internal/core/identity"
	"github.com/scenekit/scenekit/internal/core/observability/log"
	"github.com/scenekit/scenekit/internal/core/path"
	"github.com/scenekit/scenekit/internal/core/save"
	"github.com/scenekit/scenekit/internal/core/save/config"
	"github.com/scenekit/scenekit/internal/core/save/store"
	"github.com/scenekit/scenekit/internal/core/scene"
)

var (
	ErrSlotNotFound   = errors.New("save slot not found")
	ErrSlotOutOfRange = errors.New("save slot out of range")
	ErrWriteFailed    = errors.New("save file could not be written")
)

// GameState is everything one save slot holds: the snapshot records gathered
// from the object graph, grouped per capability family.
type GameState struct {
	Transforms []save.TransformData  `json:"transforms" xml:"transforms>transform"`
	Visibility []save.VisibilityData `json:"visibility" xml:"visibility>renderer"`
	Paths      []save.PathData       `json:"paths" xml:"paths>path"`
}

// Manager ties the pipeline, the store and the identity registry together.
// It is synchronous and main-thread bound like the rest of the core.
type Manager struct {
	cfg      config.Config
	pipeline *save.Pipeline
	store    *store.FileStore
	log      log.Log
	session  uuid.UUID
}

func New(cfg config.Config, pipeline *save.Pipeline, st *store.FileStore, logger log.Log) *Manager {
	return &Manager{
		cfg:      cfg,
		pipeline: pipeline,
		store:    st,
		log:      logger,
		session:  uuid.New(),
	}
}

// Capture walks the graph and snapshots every object that carries a non-zero
// ConstantID. Untagged objects with savable components are reported by the
// registry and skipped.
func (m *Manager) Capture(graph scene.Graph) GameState {
	reg := identity.NewRegistry(graph, m.log)
	var state GameState

	for _, obj := range graph.Objects() {
		if !savable(obj) {
			continue
		}
		id := reg.IdentifierOf(obj)
		if id == 0 {
			continue
		}
		base := save.RememberData{ObjectID: id, Active: true}

		if t, ok := scene.ComponentOf[*scene.Transform](obj); ok {
			state.Transforms = append(state.Transforms, save.TransformData{
				RememberData: base,
				X:            t.X, Y: t.Y, Z: t.Z,
				RotX: t.RotX, RotY: t.RotY, RotZ: t.RotZ,
				ScaleX: t.ScaleX, ScaleY: t.ScaleY, ScaleZ: t.ScaleZ,
			})
		}
		if r, ok := scene.ComponentOf[*scene.Renderer](obj); ok {
			state.Visibility = append(state.Visibility, save.VisibilityData{
				RememberData: base,
				Visible:      r.Visible,
			})
		}
		if p, ok := scene.ComponentOf[*path.Path](obj); ok {
			state.Paths = append(state.Paths, save.PathData{
				RememberData: base,
				AffectY:      p.AffectY,
				PathType:     int(p.Type),
				NodePause:    p.NodePause,
				Nodes:        path.EncodeNodes(p.Nodes),
			})
		}
	}
	return state
}

// Restore re-resolves every snapshot's identifier against the graph and
// applies the recorded state. Identifiers that no longer resolve are skipped;
// scenes change between saves and that is not an error.
func (m *Manager) Restore(graph scene.Graph, state GameState) {
	reg := identity.NewRegistry(graph, m.log)

	for _, d := range state.Transforms {
		if t, ok := identity.Resolve[*scene.Transform](reg, d.ObjectID); ok {
			t.X, t.Y, t.Z = d.X, d.Y, d.Z
			t.RotX, t.RotY, t.RotZ = d.RotX, d.RotY, d.RotZ
			t.ScaleX, t.ScaleY, t.ScaleZ = d.ScaleX, d.ScaleY, d.ScaleZ
		}
	}
	for _, d := range state.Visibility {
		if r, ok := identity.Resolve[*scene.Renderer](reg, d.ObjectID); ok {
			r.Visible = d.Visible
		}
	}
	for _, d := range state.Paths {
		if p, ok := identity.Resolve[*path.Path](reg, d.ObjectID); ok {
			path.DecodeNodes(p, d.Nodes)
			p.AffectY = d.AffectY
			p.Type = path.Type(d.PathType)
			p.NodePause = d.NodePause
		}
	}
}

// SaveSlot captures the graph and files it under the slot, updating the
// profile manifest.
func (m *Manager) SaveSlot(graph scene.Graph, slot int, label string) error {
	if slot < 0 || (m.cfg.MaxSlots > 0 && slot >= m.cfg.MaxSlots) {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}

	state := m.Capture(graph)
	payload := save.SerializeObject(m.pipeline, state, true)
	if payload == "" {
		return fmt.Errorf("%w: empty payload for slot %d", ErrWriteFailed, slot)
	}

	file := m.slotFile(slot)
	if !m.store.Write(file, payload) {
		return fmt.Errorf("%w: %s", ErrWriteFailed, file)
	}

	manifest := m.loadManifest()
	manifest.Upsert(SlotRecord{
		Slot:    slot,
		Label:   label,
		File:    file,
		SavedAt: time.Now().UTC(),
		Session: m.session.String(),
		Digest:  xxhash.Sum64String(payload),
	})
	if !m.store.WriteRecord(m.manifestFile(), manifest) {
		return fmt.Errorf("%w: %s", ErrWriteFailed, m.manifestFile())
	}

	m.log.Info("slot saved",
		log.Int("slot", slot), log.String("format", m.pipeline.ActiveTag()))
	return nil
}

// LoadSlot reads the slot file, decodes it and applies it to the graph. The
// manifest digest is advisory; a mismatch is logged and the load proceeds, so
// a damaged manifest never strands an otherwise readable save.
func (m *Manager) LoadSlot(graph scene.Graph, slot int) error {
	manifest := m.loadManifest()

	file := m.slotFile(slot)
	if rec, ok := manifest.Find(slot); ok && rec.File != "" {
		file = rec.File
	}

	payload := m.store.Read(file)
	if payload == "" {
		return fmt.Errorf("%w: slot %d", ErrSlotNotFound, slot)
	}

	if rec, ok := manifest.Find(slot); ok && rec.Digest != 0 {
		if got := xxhash.Sum64String(payload); got != rec.Digest {
			m.log.Warn("save file digest does not match manifest",
				log.Int("slot", slot),
				log.Uint64("expected", rec.Digest), log.Uint64("actual", got))
		}
	}

	state := save.DeserializeObject[GameState](m.pipeline, payload)
	m.Restore(graph, state)

	m.log.Info("slot loaded", log.Int("slot", slot))
	return nil
}

// DeleteSlot removes the slot file and its manifest entry.
func (m *Manager) DeleteSlot(slot int) error {
	manifest := m.loadManifest()

	file := m.slotFile(slot)
	if rec, ok := manifest.Find(slot); ok && rec.File != "" {
		file = rec.File
	}

	if !m.store.Delete(file) {
		return fmt.Errorf("%w: %s", ErrWriteFailed, file)
	}
	manifest.Remove(slot)
	if !m.store.WriteRecord(m.manifestFile(), manifest) {
		return fmt.Errorf("%w: %s", ErrWriteFailed, m.manifestFile())
	}
	return nil
}

// ListSlots returns the manifest records for the active profile, ordered by
// slot.
func (m *Manager) ListSlots() []SlotRecord {
	return m.loadManifest().Slots
}

// SaveOptions persists the player settings of the active profile.
func (m *Manager) SaveOptions(opts save.OptionsData) error {
	payload := save.SerializeObject(m.pipeline, opts, true)
	if payload == "" {
		return fmt.Errorf("%w: options", ErrWriteFailed)
	}
	if !m.store.Write(m.optionsFile(), payload) {
		return fmt.Errorf("%w: %s", ErrWriteFailed, m.optionsFile())
	}
	return nil
}

// LoadOptions returns the active profile's settings, or the defaults when
// nothing was saved yet or the payload was written by a mismatched format.
func (m *Manager) LoadOptions() save.OptionsData {
	return m.pipeline.DeserializeOptions(m.store.Read(m.optionsFile()))
}

func (m *Manager) loadManifest() *Manifest {
	manifest := &Manifest{Profile: m.cfg.ActiveProfile}
	m.store.ReadRecord(m.manifestFile(), manifest)
	return manifest
}

func (m *Manager) slotFile(slot int) string {
	return filepath.Join(m.cfg.SaveDirectory,
		fmt.Sprintf("profile%d_slot%d.save", m.cfg.ActiveProfile, slot))
}

func (m *Manager) manifestFile() string {
	return filepath.Join(m.cfg.SaveDirectory,
		fmt.Sprintf("profile%d_manifest.json", m.cfg.ActiveProfile))
}

func (m *Manager) optionsFile() string {
	return filepath.Join(m.cfg.SaveDirectory,
		fmt.Sprintf("profile%d_options.cfg", m.cfg.ActiveProfile))
}

func savable(obj *scene.Object) bool {
	if _, ok := scene.ComponentOf[*scene.Transform](obj); ok {
		return true
	}
	if _, ok := scene.ComponentOf[*scene.Renderer](obj); ok {
		return true
	}
	if _, ok := scene.ComponentOf[*path.Path](obj); ok {
		return true
	}
	return false
}
