package scenes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/picnic/pkg/config"
	"github.com/gonewx/picnic/pkg/game"
	"github.com/gonewx/picnic/pkg/utils"
)

func loadShippedScene(t *testing.T, edit func(string) string) *game.SceneDescription {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "picnic.yaml"))
	if err != nil {
		t.Fatalf("failed to read scene: %v", err)
	}
	text := string(data)
	if edit != nil {
		text = edit(text)
	}
	desc, err := game.ParseSceneDescription([]byte(text))
	if err != nil {
		t.Fatalf("ParseSceneDescription() error = %v", err)
	}
	return desc
}

func TestNewPlayScene(t *testing.T) {
	scene, err := NewPlayScene(config.DefaultGameplayConfig(), loadShippedScene(t, nil), utils.NewRandomSource(1))
	if err != nil {
		t.Fatalf("NewPlayScene() error = %v", err)
	}

	gs := scene.GameState()
	if gs.Health() != 20 {
		t.Errorf("initial health = %d, want 20", gs.Health())
	}
	if gs.HealthText() != "Health: 20" {
		t.Errorf("HealthText() = %q", gs.HealthText())
	}

	// 3 秒后出现第一个热狗
	for i := 0; i < 179; i++ {
		scene.Step(1.0 / 60)
	}
	if len(gs.Hotdogs) != 0 {
		t.Errorf("hotdogs before 3.0 = %d, want 0", len(gs.Hotdogs))
	}
	scene.Step(1.0 / 30)
	if len(gs.Hotdogs) != 1 {
		t.Errorf("hotdogs after 3.0 = %d, want 1", len(gs.Hotdogs))
	}
	if len(gs.Apples) == 0 {
		t.Error("apples should have spawned before 3.0")
	}

	if !scene.Fire() {
		t.Error("Fire() should succeed at full health")
	}
}

func TestNewPlaySceneRequiresOneCamera(t *testing.T) {
	tests := []struct {
		name string
		edit func(string) string
	}{
		{
			name: "no camera",
			edit: func(s string) string {
				return s[:strings.Index(s, "cameras:")] + "cameras: []\n"
			},
		},
		{
			name: "two cameras",
			edit: func(s string) string {
				return s + "  - {node: Camera, fovy: 0.8}\n"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlayScene(config.DefaultGameplayConfig(), loadShippedScene(t, tt.edit), utils.NewRandomSource(1))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), "exactly one camera") {
				t.Errorf("error %q should mention the camera requirement", err)
			}
		})
	}
}

func TestHUDLayout(t *testing.T) {
	size, x, y := hudLayout(720)
	if size <= 0 || size > 720 {
		t.Fatalf("size = %v", size)
	}
	if x <= 0 || x >= size {
		t.Errorf("left padding = %v, want within (0, %v)", x, size)
	}
	if y >= 720 || y <= 720-size {
		t.Errorf("baseline y = %v, want just above the bottom edge", y)
	}
}
