package manager

import (
	"encoding/json"
	"time"

	"github.com/scenekit/scenekit/pkg/encoding"
	"github.com/scenekit/scenekit/pkg/sequence"
)

// SlotRecord is one entry of the slot manifest: where a save lives and enough
// metadata to present it in a load menu and notice corruption.
type SlotRecord struct {
	Slot    int       `json:"slot"`
	Label   string    `json:"label"`
	File    string    `json:"file"`
	SavedAt time.Time `json:"savedAt"`
	Session string    `json:"session"`
	Digest  uint64    `json:"digest"`
}

// Manifest is the per-profile index of save slots. It is bookkeeping, not
// save data, so it is always JSON regardless of the configured save format.
type Manifest struct {
	Profile int          `json:"profile"`
	Slots   []SlotRecord `json:"slots"`
}

var _ encoding.Serializable = (*Manifest)(nil)

func (m *Manifest) Serialize() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (m *Manifest) Deserialize(data []byte) error {
	return json.Unmarshal(data, m)
}

// Upsert replaces the record for its slot, or appends it, keeping the slots
// ordered.
func (m *Manifest) Upsert(rec SlotRecord) {
	kept := sequence.From(m.Slots).
		Filter(func(r SlotRecord) bool { return r.Slot != rec.Slot }).
		Collect()
	m.Slots = sequence.From(append(kept, rec)).
		Sort(func(a, b SlotRecord) bool { return a.Slot < b.Slot }).
		Collect()
}

// Find returns the record for a slot.
func (m *Manifest) Find(slot int) (SlotRecord, bool) {
	return sequence.From(m.Slots).
		Find(func(r SlotRecord) bool { return r.Slot == slot })
}

// Remove drops the record for a slot, if present.
func (m *Manifest) Remove(slot int) {
	m.Slots = sequence.From(m.Slots).
		Filter(func(r SlotRecord) bool { return r.Slot != slot }).
		Collect()
}
