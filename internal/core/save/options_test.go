package save

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenekit/internal/core/save/format"
)

func TestOptions_Defaults(t *testing.T) {
	opts := DefaultOptions()

	require.Equal(t, 0, opts.Language)
	require.InDelta(t, 1.0, opts.SpeechVolume, 1e-6)
	require.InDelta(t, 0.6, opts.MusicVolume, 1e-6)
	require.InDelta(t, 0.9, opts.SFXVolume, 1e-6)
	require.False(t, opts.ShowSubtitles)
}

func TestOptions_RoundTripPerFormat(t *testing.T) {
	in := OptionsData{
		Language:        2,
		SpeechVolume:    0.5,
		MusicVolume:     0.25,
		SFXVolume:       1,
		ShowSubtitles:   true,
		LinkedVariables: "3:12|7:0",
	}

	for _, tag := range []string{format.TagXML, format.TagJSON, format.TagBinary} {
		t.Run(tag, func(t *testing.T) {
			p := newPipeline(t, tag)
			out := p.DeserializeOptions(SerializeObject(p, in, true))
			require.Equal(t, in, out)
		})
	}
}

func TestOptions_EmptyDataYieldsDefaults(t *testing.T) {
	p := newPipeline(t, format.TagXML)
	require.Equal(t, DefaultOptions(), p.DeserializeOptions(""))
}

func TestOptions_MismatchedKnownTagYieldsDefaults(t *testing.T) {
	// A payload that leads with a known tag for a format other than the
	// active one must never reach a mismatched decoder.
	p := newPipeline(t, format.TagXML)
	require.Equal(t, DefaultOptions(), p.DeserializeOptions("JsonXYZ"))

	p = newPipeline(t, format.TagJSON)
	require.Equal(t, DefaultOptions(), p.DeserializeOptions("BinaryXYZ"))
}

func TestOptions_CorruptPayloadYieldsDefaults(t *testing.T) {
	p := newPipeline(t, format.TagJSON)
	require.Equal(t, DefaultOptions(), p.DeserializeOptions("Json{broken"))
}

func TestOptions_TaggedXMLUnderOtherActiveFormatStillDecodes(t *testing.T) {
	// A tagged XML payload read under a non-XML active handler is routed to
	// the XML decoder by sniffing; the mismatch guard compares against the
	// sniff-selected handler, so the legacy payload decodes instead of being
	// discarded for defaults.
	writer := newPipeline(t, format.TagXML)
	in := DefaultOptions()
	in.Language = 4
	data := SerializeObject(writer, in, true)

	reader := newPipeline(t, format.TagJSON)
	require.Equal(t, in, reader.DeserializeOptions(data))
}

func TestOptions_SniffedXMLStillDecodes(t *testing.T) {
	writer := newPipeline(t, format.TagXML)
	data := SerializeObject(writer, DefaultOptions(), false)

	reader := newPipeline(t, format.TagBinary)
	require.Equal(t, DefaultOptions(), reader.DeserializeOptions(data))
}
