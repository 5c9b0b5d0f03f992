package gamemenu

import (
	"errors"
	"testing"
	"time"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/menu"
	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/screens"
	"github.com/google/go-cmp/cmp"
)

func testMenu() *menu.Menu {
	measure := menu.MeasureFunc(func(text string) (float64, float64) {
		return float64(10 * len(text)), 20
	})
	return menu.New(menu.DefaultOptions("Main"), measure,
		menu.NewEntry("Play", nil),
		menu.NewOptionEntry("Sound", []string{"on", "off"}, 0),
	)
}

func TestConfirmedResult(t *testing.T) {
	m := testMenu()
	pad := menu.Device{Kind: menu.DeviceGamepad, Index: 1}

	got := confirmedResult(m, menu.Intent{Kind: menu.IntentConfirm, Index: 0, Device: pad})
	want := &MenuResult{Action: MenuActionSelected, Index: 0, Label: "Play", Device: pad}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("confirmedResult() mismatch (-want +got):\n%s", diff)
	}

	if r := confirmedResult(m, menu.Intent{Kind: menu.IntentConfirm, Index: 1, Device: pad}); r != nil {
		t.Errorf("option entry confirm should keep the menu open, got %+v", r)
	}
	if r := confirmedResult(m, menu.Intent{Kind: menu.IntentConfirm, Index: 5}); r != nil {
		t.Errorf("out of range confirm = %+v, want nil", r)
	}
	if r := confirmedResult(m, menu.Intent{Kind: menu.IntentCancel, Index: -1}); r != nil {
		t.Errorf("cancel = %+v, want nil", r)
	}
}

func TestMenuScreenGatesInputOnFocus(t *testing.T) {
	host := NewHost()
	bottom := testMenu()
	top := testMenu()

	if _, err := host.PushMenu(bottom, screens.Options{}); err != nil {
		t.Fatal(err)
	}
	topScreen, err := host.PushMenu(top, screens.Options{})
	if err != nil {
		t.Fatal(err)
	}

	host.input = menu.FrameInput{
		Viewport: menu.Size{Width: 800, Height: 600},
		Keys:     []constants.VirtualButton{constants.VirtualButtonDown},
	}
	host.Manager.Update(16*time.Millisecond, true)

	if got, _ := top.SelectedIndex(); got != 1 {
		t.Errorf("top selection = %d, want 1", got)
	}
	if got, _ := bottom.SelectedIndex(); got != 0 {
		t.Errorf("bottom selection = %d, want 0 (no focus)", got)
	}
	if topScreen.LastIntent().Kind != menu.IntentMoveDown {
		t.Errorf("LastIntent() = %s, want move down", topScreen.LastIntent())
	}

	// Cancel with no hook exits the focused screen; zero OffTime removes it at once.
	host.input.Keys = []constants.VirtualButton{constants.VirtualButtonB}
	host.Manager.Update(16*time.Millisecond, true)
	if host.Manager.Contains(topScreen) {
		t.Error("cancelled screen still on the stack")
	}
	if host.Manager.Len() != 1 {
		t.Errorf("Len() = %d, want 1", host.Manager.Len())
	}
}

func TestOpenMenuDuringExitTransition(t *testing.T) {
	host := NewHost()
	options := testMenu()
	opts := screens.Options{OnTime: 0, OffTime: time.Second}

	if _, err := host.PushMenu(testMenu(), screens.Options{}); err != nil {
		t.Fatal(err)
	}
	first, err := host.OpenMenu(options, opts)
	if err != nil {
		t.Fatal(err)
	}
	host.Manager.Update(16*time.Millisecond, true)

	again, err := host.OpenMenu(options, opts)
	if err != nil {
		t.Fatal(err)
	}
	if again != first {
		t.Error("OpenMenu on an open menu pushed a second screen")
	}

	first.Exit()
	host.Manager.Update(100*time.Millisecond, true)
	if !host.Manager.Contains(first) {
		t.Fatal("screen left the stack before its exit transition finished")
	}

	reopened, err := host.OpenMenu(options, opts)
	if err != nil {
		t.Fatal(err)
	}
	if reopened == first {
		t.Error("OpenMenu returned the exiting screen")
	}
	if host.Manager.Contains(first) {
		t.Error("exiting screen still on the stack")
	}
	if host.Manager.Top() != reopened || host.Manager.Len() != 2 {
		t.Errorf("stack: top %v, len %d; want reopened screen on top of 2", host.Manager.Top(), host.Manager.Len())
	}
}

func TestMenuTransition(t *testing.T) {
	tests := []struct {
		status screens.Status
		want   menu.Transition
	}{
		{screens.Status{Progress: 0.5, Direction: screens.Entering}, menu.Transition{Progress: 0.5, Direction: menu.Entering}},
		{screens.Status{Progress: 0.25, Direction: screens.Exiting}, menu.Transition{Progress: 0.25, Direction: menu.Exiting}},
	}
	for _, tt := range tests {
		if got := menuTransition(tt.status); got != tt.want {
			t.Errorf("menuTransition(%+v) = %+v, want %+v", tt.status, got, tt.want)
		}
	}
}

func TestErrors(t *testing.T) {
	wrapped := NewInfrastructureError("init", errors.New("no display"))
	if !IsInfrastructureError(wrapped) {
		t.Error("IsInfrastructureError() = false")
	}
	if IsCancelled(wrapped) {
		t.Error("IsCancelled() = true for infrastructure error")
	}
	if got := wrapped.Error(); got != "gamemenu: init: no display" {
		t.Errorf("Error() = %q", got)
	}
	if !IsCancelled(errors.Join(errors.New("ctx"), ErrCancelled)) {
		t.Error("IsCancelled() should see wrapped ErrCancelled")
	}
}
