package internal

import (
	"testing"

	"github.com/BrandonKowalski/gamemenu/pkg/gamemenu/constants"
)

func TestInitFailureTearsDown(t *testing.T) {
	t.Setenv("SDL_VIDEODRIVER", "dummy")
	t.Setenv(constants.EnvironmentEnvVar, "")

	err := Init(InitOptions{
		Title:    "teardown",
		Width:    320,
		Height:   240,
		Window:   WindowOptions{Hidden: true},
		FontPath: "/nonexistent/font.ttf",
		FontSize: 16,
	})
	if err == nil {
		SDLCleanup()
		t.Fatal("Init() with a missing font succeeded")
	}

	if GetWindow() != nil {
		t.Error("window left open after failed Init")
	}
	if GetInputProcessor() != nil {
		t.Error("input processor left running after failed Init")
	}
	if Fonts.EntryFont != nil || Fonts.TitleFont != nil {
		t.Error("fonts left open after failed Init")
	}
}

func TestTeardownIsRepeatable(t *testing.T) {
	globalInputProcessor = NewInputProcessor(nil)
	globalInputProcessor.AttachEvdev(newEvdevSource(nil))

	teardown()
	teardown()

	if GetInputProcessor() != nil {
		t.Error("input processor survived teardown")
	}
	if GetWindow() != nil {
		t.Error("window survived teardown")
	}
}
