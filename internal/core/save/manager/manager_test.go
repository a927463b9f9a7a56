package manager

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenekit/internal/core/observability/log"
	"github.com/scenekit/scenekit/internal/core/path"
	"github.com/scenekit/scenekit/internal/core/save"
	"github.com/scenekit/scenekit/internal/core/save/config"
	"github.com/scenekit/scenekit/internal/core/save/format"
	"github.com/scenekit/scenekit/internal/core/save/store"
	"github.com/scenekit/scenekit/internal/core/scene"
)

func newTestManager(t *testing.T, formatTag string) *Manager {
	t.Helper()

	cfg := config.Default()
	cfg.Format = formatTag
	cfg.MaxSlots = 10

	logger := log.NewNop()
	return New(cfg, save.NewPipeline(formatTag, logger), store.New(afero.NewMemMapFs(), logger), logger)
}

// testScene builds the same scene twice so a load can be verified against a
// fresh graph, the way a real load follows a scene reload.
func testScene() *scene.MemoryGraph {
	hero := scene.NewObject("hero").
		Attach(&scene.ConstantID{ID: 1}).
		Attach(&scene.Transform{ScaleX: 1, ScaleY: 1, ScaleZ: 1}).
		Attach(&scene.Renderer{Visible: true})

	patrol := scene.NewObject("patrol").
		Attach(&scene.ConstantID{ID: 2}).
		Attach(&path.Path{AffectY: true})

	// No ConstantID: never captured, never restored.
	debris := scene.NewObject("debris").
		Attach(&scene.Transform{})

	return scene.NewMemoryGraph(hero, patrol, debris)
}

func TestManager_SaveAndLoadSlot(t *testing.T) {
	for _, tag := range []string{format.TagXML, format.TagJSON, format.TagBinary} {
		t.Run(tag, func(t *testing.T) {
			m := newTestManager(t, tag)

			world := testScene()
			hero, _ := scene.ComponentOf[*scene.Transform](world.Objects()[0])
			hero.X, hero.Y, hero.Z = 3, 4, 5
			patrol, _ := scene.ComponentOf[*path.Path](world.Objects()[1])
			patrol.Nodes = []path.Vector3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}
			patrol.Type = path.Loop

			require.NoError(t, m.SaveSlot(world, 0, "checkpoint"))

			// The "reloaded scene" starts from authoring-time state.
			reloaded := testScene()
			require.NoError(t, m.LoadSlot(reloaded, 0))

			heroAgain, _ := scene.ComponentOf[*scene.Transform](reloaded.Objects()[0])
			require.Equal(t, float32(3), heroAgain.X)
			require.Equal(t, float32(4), heroAgain.Y)
			require.Equal(t, float32(5), heroAgain.Z)

			patrolAgain, _ := scene.ComponentOf[*path.Path](reloaded.Objects()[1])
			require.Equal(t, path.Loop, patrolAgain.Type)
			require.Len(t, patrolAgain.Nodes, 2)
			require.Equal(t, path.Vector3{X: 4, Y: 5, Z: 6}, patrolAgain.Nodes[1])
		})
	}
}

func TestManager_LoadMissingSlotFails(t *testing.T) {
	m := newTestManager(t, format.TagJSON)
	require.ErrorIs(t, m.LoadSlot(testScene(), 3), ErrSlotNotFound)
}

func TestManager_SlotOutOfRange(t *testing.T) {
	m := newTestManager(t, format.TagJSON)
	require.ErrorIs(t, m.SaveSlot(testScene(), 10, "over"), ErrSlotOutOfRange)
	require.ErrorIs(t, m.SaveSlot(testScene(), -1, "under"), ErrSlotOutOfRange)
}

func TestManager_ListSlotsOrdered(t *testing.T) {
	m := newTestManager(t, format.TagJSON)
	world := testScene()

	require.NoError(t, m.SaveSlot(world, 2, "late"))
	require.NoError(t, m.SaveSlot(world, 0, "early"))

	slots := m.ListSlots()
	require.Len(t, slots, 2)
	require.Equal(t, 0, slots[0].Slot)
	require.Equal(t, "early", slots[0].Label)
	require.Equal(t, 2, slots[1].Slot)
	require.NotEmpty(t, slots[0].Session)
	require.NotZero(t, slots[0].Digest)
}

func TestManager_ResaveReplacesManifestEntry(t *testing.T) {
	m := newTestManager(t, format.TagJSON)
	world := testScene()

	require.NoError(t, m.SaveSlot(world, 0, "first"))
	require.NoError(t, m.SaveSlot(world, 0, "second"))

	slots := m.ListSlots()
	require.Len(t, slots, 1)
	require.Equal(t, "second", slots[0].Label)
}

func TestManager_DeleteSlot(t *testing.T) {
	m := newTestManager(t, format.TagJSON)
	world := testScene()

	require.NoError(t, m.SaveSlot(world, 1, "doomed"))
	require.NoError(t, m.DeleteSlot(1))

	require.Empty(t, m.ListSlots())
	require.ErrorIs(t, m.LoadSlot(world, 1), ErrSlotNotFound)
}

func TestManager_LoadAfterFormatSwitch(t *testing.T) {
	// Save as XML, then the project switches to Binary. The old save stays
	// loadable through sniffing.
	cfg := config.Default()
	cfg.Format = format.TagXML
	logger := log.NewNop()
	fs := afero.NewMemMapFs()

	writer := New(cfg, save.NewPipeline(format.TagXML, logger), store.New(fs, logger), logger)
	world := testScene()
	hero, _ := scene.ComponentOf[*scene.Transform](world.Objects()[0])
	hero.X = 11
	require.NoError(t, writer.SaveSlot(world, 0, "before switch"))

	cfg.Format = format.TagBinary
	reader := New(cfg, save.NewPipeline(format.TagBinary, logger), store.New(fs, logger), logger)

	reloaded := testScene()
	require.NoError(t, reader.LoadSlot(reloaded, 0))
	heroAgain, _ := scene.ComponentOf[*scene.Transform](reloaded.Objects()[0])
	require.Equal(t, float32(11), heroAgain.X)
}

func TestManager_Options(t *testing.T) {
	m := newTestManager(t, format.TagJSON)

	// Nothing saved yet: defaults.
	require.Equal(t, save.DefaultOptions(), m.LoadOptions())

	opts := save.DefaultOptions()
	opts.Language = 3
	opts.ShowSubtitles = true
	require.NoError(t, m.SaveOptions(opts))
	require.Equal(t, opts, m.LoadOptions())
}

func TestManager_OptionsArePerProfile(t *testing.T) {
	logger := log.NewNop()
	fs := afero.NewMemMapFs()

	cfg := config.Default()
	cfg.Format = format.TagJSON
	profile0 := New(cfg, save.NewPipeline(cfg.Format, logger), store.New(fs, logger), logger)

	cfg.ActiveProfile = 1
	profile1 := New(cfg, save.NewPipeline(cfg.Format, logger), store.New(fs, logger), logger)

	opts := save.DefaultOptions()
	opts.Language = 2
	require.NoError(t, profile0.SaveOptions(opts))

	require.Equal(t, save.DefaultOptions(), profile1.LoadOptions())
	require.Equal(t, opts, profile0.LoadOptions())
}

func TestManager_CaptureSkipsUntaggedObjects(t *testing.T) {
	m := newTestManager(t, format.TagJSON)

	state := m.Capture(testScene())
	require.Len(t, state.Transforms, 1)
	require.Equal(t, 1, state.Transforms[0].ObjectID)
	require.Len(t, state.Paths, 1)
	require.Equal(t, 2, state.Paths[0].ObjectID)
}
