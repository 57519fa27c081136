package engine

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sector-atlas/geo"
	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/sector"
)

type memStore struct {
	mu      sync.Mutex
	sectors []sector.Sector
	saves   int
}

func (m *memStore) GetAll() ([]sector.Sector, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sector.Sector, len(m.sectors))
	copy(out, m.sectors)
	return out, nil
}

func (m *memStore) Save(s sector.Sector) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	for i := range m.sectors {
		if m.sectors[i].Address == s.Address {
			m.sectors[i] = s
			return nil
		}
	}
	m.sectors = append(m.sectors, s)
	return nil
}

type instantProvider struct{}

func (instantProvider) Resolve(_ context.Context, _ string) (*big.Int, *big.Int, error) {
	return big.NewInt(0), big.NewInt(0), nil
}

type failingProvider struct {
	calls atomic.Int32
}

func (p *failingProvider) Resolve(_ context.Context, _ string) (*big.Int, *big.Int, error) {
	p.calls.Add(1)
	return nil, nil, errors.New("provider unreachable")
}

func testStore() *memStore {
	return &memStore{sectors: []sector.Sector{
		{Address: "0xaaa", Name: "Kessel", Waat: "181",
			Hecke: &sector.HeckePair{Lat: "0", Lon: "0"}},
		{Address: "0xbbb", Name: "Prime", IsSystem: true, Waat: "99",
			Hecke: &sector.HeckePair{Lat: "0", Lon: "0"}},
		{Address: "0xccc", Name: "Drift", Waat: "424242"},
	}}
}

func testScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestContext(t *testing.T, opts Options) *Context {
	t.Helper()
	if opts.Store == nil {
		opts.Store = testStore()
	}
	opts.SettingsPath = filepath.Join(t.TempDir(), "settings.toml")

	ctx, err := NewContext(testScreen(t), opts)
	if err != nil {
		t.Fatal(err)
	}
	ctx.SetSize(100, 30)
	t.Cleanup(ctx.Stop)
	return ctx
}

func TestWheelAdjustsZoomTarget(t *testing.T) {
	ctx := newTestContext(t, Options{})
	before := ctx.Cam.Target().Zoom

	ctx.HandleEvent(tcell.NewEventMouse(50, 15, tcell.WheelUp, 0))
	if ctx.Cam.Target().Zoom <= before {
		t.Error("Wheel up should raise the zoom target")
	}
	if ctx.Cam.View().Zoom != before {
		t.Error("Wheel must not snap the current zoom")
	}
}

func TestClickSelectsHoveredNode(t *testing.T) {
	ctx := newTestContext(t, Options{})
	ctx.Cam.Pan(12, 3)
	ctx.Update(time.Now())

	n := &ctx.Nodes[0]
	x, y := int(n.ScreenX+0.5), int(n.ScreenY+0.5)

	ctx.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonPrimary, 0))
	ctx.Update(time.Now())
	if ctx.Hover != 0 {
		t.Fatalf("Expected hover on node 0, got %d", ctx.Hover)
	}

	ctx.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, 0))

	if ctx.Selected != 0 {
		t.Fatalf("Expected click to select node 0, got %d", ctx.Selected)
	}
	if ctx.Cam.Target().PanX == 12 && ctx.Cam.Target().PanY == 3 {
		t.Error("Selection should retarget the camera focus")
	}
}

func TestDragPansWithoutSelecting(t *testing.T) {
	ctx := newTestContext(t, Options{})
	ctx.Update(time.Now())

	pan := ctx.Cam.View()
	ctx.HandleEvent(tcell.NewEventMouse(50, 15, tcell.ButtonPrimary, 0))
	ctx.HandleEvent(tcell.NewEventMouse(60, 20, tcell.ButtonPrimary, 0))
	ctx.HandleEvent(tcell.NewEventMouse(60, 20, tcell.ButtonNone, 0))

	after := ctx.Cam.View()
	if after.PanX != pan.PanX+10 || after.PanY != pan.PanY+5 {
		t.Errorf("Expected drag pan (+10,+5), got (%v,%v)", after.PanX-pan.PanX, after.PanY-pan.PanY)
	}
	if ctx.Selected != -1 {
		t.Error("A drag must not count as a click selection")
	}
}

func TestOrbitDragAdjustsRotation(t *testing.T) {
	ctx := newTestContext(t, Options{})

	before := ctx.Cam.View().Rotation
	ctx.HandleEvent(tcell.NewEventMouse(50, 15, tcell.ButtonSecondary, 0))
	ctx.HandleEvent(tcell.NewEventMouse(70, 15, tcell.ButtonSecondary, 0))
	ctx.HandleEvent(tcell.NewEventMouse(70, 15, tcell.ButtonNone, 0))

	if ctx.Cam.View().Rotation == before {
		t.Error("Secondary drag should orbit")
	}
}

func TestFlatViewZeroesElevationAndTilt(t *testing.T) {
	ctx := newTestContext(t, Options{})

	ctx.SetFlat(true)
	v := ctx.Cam.View()
	if v.Tilt != 0 || v.Rotation != 0 {
		t.Error("Flat view must zero current tilt/rotation")
	}
	for _, p := range [][2]float64{{0, 0}, {45, -20}, {-179, 89}} {
		if z := ctx.Field.At(p[0], p[1]); z != 0 {
			t.Errorf("Expected zero elevation in flat view at %v, got %v", p, z)
		}
	}

	ctx.Update(time.Now())
	for i := range ctx.Nodes {
		if ctx.Nodes[i].Elevation != 0 {
			t.Errorf("Node %d kept elevation in flat view", i)
		}
	}
}

func TestSystemToggleKeepsCamera(t *testing.T) {
	ctx := newTestContext(t, Options{})
	ctx.Cam.Pan(25, -10)
	ctx.Select(1)

	before := ctx.Cam.View()
	ctx.ToggleSystem()

	if ctx.System != geo.SystemLinear {
		t.Fatalf("Expected linear system after toggle, got %v", ctx.System)
	}
	after := ctx.Cam.View()
	if after.PanX != before.PanX || after.PanY != before.PanY || after.Zoom != before.Zoom {
		t.Error("Rebuild must not reset the camera")
	}
	if ctx.Selected < 0 || ctx.Nodes[ctx.Selected].Address != "0xbbb" {
		t.Error("Selection must survive a rebuild by address")
	}
}

func TestResolverTransitionsPending(t *testing.T) {
	store := testStore()
	ctx := newTestContext(t, Options{Store: store, Provider: instantProvider{}})

	deadline := time.Now().Add(2 * time.Second)
	for {
		ctx.Update(time.Now())

		pending := false
		for i := range ctx.Nodes {
			if ctx.Nodes[i].Address == "0xccc" && ctx.Nodes[i].Pending {
				pending = true
			}
		}
		if !pending {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Pending node never transitioned after resolution")
		}
		time.Sleep(5 * time.Millisecond)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.saves == 0 {
		t.Error("Resolved sector was not persisted")
	}
}

func TestResolverRetriesFailedPass(t *testing.T) {
	p := &failingProvider{}
	ctx := newTestContext(t, Options{Store: testStore(), Provider: p})

	deadline := time.Now().Add(2 * time.Second)
	for p.calls.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Initial resolution pass never ran")
		}
		time.Sleep(5 * time.Millisecond)
	}
	first := p.calls.Load()

	// Age the last kick past the retry interval; the next frame must
	// start another pass even though nothing else changed
	for p.calls.Load() == first {
		ctx.lastKick = time.Now().Add(-parameter.ResolveRetryInterval)
		ctx.Update(time.Now())
		if time.Now().After(deadline) {
			t.Fatal("Failed pass was never retried")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPreviewIgnoresInput(t *testing.T) {
	ctx := newTestContext(t, Options{Preview: true})

	zoom := ctx.Cam.Target().Zoom
	ctx.HandleEvent(tcell.NewEventMouse(50, 15, tcell.WheelUp, 0))
	if ctx.Cam.Target().Zoom != zoom {
		t.Error("Preview mode must ignore wheel input")
	}

	ctx.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '3', 0))
	ctx.Update(time.Now())
	if ctx.Hover != -1 {
		t.Error("Preview mode must not hover")
	}

	if !ctx.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0)) {
		t.Error("Unbound keys must not quit")
	}
	if ctx.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Error("Quit must still work in preview mode")
	}
}

func TestEngageNotifiesHost(t *testing.T) {
	var engaged string
	ctx := newTestContext(t, Options{OnSelectSector: func(addr string) { engaged = addr }})

	ctx.Engage()
	if engaged != "" {
		t.Error("Engage with no selection must not fire the callback")
	}

	ctx.Select(0)
	ctx.Engage()
	if engaged != "0xaaa" {
		t.Errorf("Expected engaged address 0xaaa, got %q", engaged)
	}
}

func TestGravityAdjustPersists(t *testing.T) {
	ctx := newTestContext(t, Options{})
	before := ctx.Field.Gravity()

	ctx.AdjustGravity(parameter.GravityStep)
	if ctx.Field.Gravity() <= before {
		t.Error("Gravity did not increase")
	}

	// The new value must land in the settings file
	reloaded := ctx.settings.GravityStrength
	if reloaded != ctx.Field.Gravity() {
		t.Errorf("Settings not updated: %v vs %v", reloaded, ctx.Field.Gravity())
	}
}
