package save

import (
	"strings"

	"github.com/scenekit/scenekit/internal/core/observability/log"
	"github.com/scenekit/scenekit/internal/core/save/format"
)

// OptionsData is the flat player-settings record persisted outside the save
// slots, once per profile.
type OptionsData struct {
	Language      int     `json:"language" xml:"language"`
	SpeechVolume  float32 `json:"speechVolume" xml:"speechVolume"`
	MusicVolume   float32 `json:"musicVolume" xml:"musicVolume"`
	SFXVolume     float32 `json:"sfxVolume" xml:"sfxVolume"`
	ShowSubtitles bool    `json:"showSubtitles" xml:"showSubtitles"`

	// LinkedVariables carries scripting-variable assignments in the same
	// delimited form the rest of the save system uses.
	LinkedVariables string `json:"linkedVariables" xml:"linkedVariables"`
}

// DefaultOptions returns the settings a fresh profile starts with.
func DefaultOptions() OptionsData {
	return OptionsData{
		Language:      0,
		SpeechVolume:  1,
		MusicVolume:   0.6,
		SFXVolume:     0.9,
		ShowSubtitles: false,
	}
}

// DeserializeOptions decodes a player-settings payload. It follows the same
// tag, strip and sniff rules as DeserializeObject with one extra guard: data
// that leads with a known format tag other than the selected handler's own is
// never fed to a mismatched decoder; the caller gets a fresh default record
// instead. Every failure path lands on defaults, never on a zeroed struct.
func (p *Pipeline) DeserializeOptions(data string) OptionsData {
	if data == "" {
		return DefaultOptions()
	}

	handler := p.selectHandler(data)

	if tag, known := format.KnownTag(data); known && tag != handler.Tag() {
		p.log.Warn("options payload was written by a different format, starting from defaults",
			log.String("payload_format", tag), log.String("format", handler.Tag()))
		return DefaultOptions()
	}

	payload := strings.TrimPrefix(data, handler.Tag())

	var opts OptionsData
	if err := handler.Unmarshal([]byte(payload), &opts); err != nil {
		p.log.Warn("options payload does not decode, starting from defaults",
			log.String("format", handler.Tag()), log.Error(err))
		return DefaultOptions()
	}
	return opts
}
