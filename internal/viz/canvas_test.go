package viz

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if !strings.ContainsRune(c.String(), 0x2801) {
		t.Error("top-left dot not set")
	}

	c.Clear()
	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			t.Errorf("cell %q survived clear", r)
		}
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	// none of these may panic
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if len([]rune(lines[0])) != 3 {
		t.Errorf("got %d runes per line, want 3", len([]rune(lines[0])))
	}
}

func TestCameraProjectsOriginToCenter(t *testing.T) {
	cam := NewCamera()
	x, y, ok := cam.Project(mgl64.Vec3{}, 160, 96)
	if !ok {
		t.Fatal("origin not visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("origin projected to (%d,%d), want (80,48)", x, y)
	}
}

func TestCameraCullsBehindNearPlane(t *testing.T) {
	cam := NewCamera()
	if _, _, ok := cam.Project(mgl64.Vec3{0, 0, 100}, 160, 96); ok {
		t.Error("point behind the near plane was not culled")
	}
}
