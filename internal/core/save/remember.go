package save

import (
	"strings"

	"github.com/scenekit/scenekit/internal/core/observability/log"
)

// RememberData is the common part of every per-object state snapshot. Each
// snapshot names the object it belongs to by its ConstantID so the object can
// be re-resolved after load.
type RememberData struct {
	ObjectID int  `json:"objectID" xml:"objectID"`
	Active   bool `json:"active" xml:"active"`
}

// ID returns the identifier of the object the snapshot belongs to.
func (d RememberData) ID() int {
	return d.ObjectID
}

// Snapshot is the capability family of per-object state records that travel
// through the script-data path.
type Snapshot interface {
	ID() int
}

// TransformData snapshots an object's world transform.
type TransformData struct {
	RememberData

	X, Y, Z          float32
	RotX, RotY, RotZ float32
	ScaleX           float32 `json:"scaleX" xml:"scaleX"`
	ScaleY           float32 `json:"scaleY" xml:"scaleY"`
	ScaleZ           float32 `json:"scaleZ" xml:"scaleZ"`
}

// VisibilityData snapshots whether an object is drawn.
type VisibilityData struct {
	RememberData

	Visible bool `json:"visible" xml:"visible"`
}

// PathData snapshots a movement path in its compact delimited form.
type PathData struct {
	RememberData

	AffectY   bool    `json:"affectY" xml:"affectY"`
	PathType  int     `json:"pathType" xml:"pathType"`
	NodePause float32 `json:"nodePause" xml:"nodePause"`
	Nodes     string  `json:"nodes" xml:"nodes"`
}

// SaveScriptData serializes one snapshot record, tagged, with the active
// encoding.
func SaveScriptData[T Snapshot](p *Pipeline, v T) string {
	return SerializeObject(p, v, true)
}

// LoadScriptData decodes one snapshot record. Unlike DeserializeObject there
// is no sniffing here: only the active handler's own tag is stripped, then
// that handler decodes. Failure yields T's zero value.
func LoadScriptData[T Snapshot](p *Pipeline, data string) T {
	var zero T
	if data == "" {
		return zero
	}

	payload := strings.TrimPrefix(data, p.active.Tag())

	var out T
	if err := p.active.Unmarshal([]byte(payload), &out); err != nil {
		p.log.Warn("discarding script data that does not decode",
			log.String("format", p.active.Tag()), log.Error(err))
		return zero
	}
	return out
}
