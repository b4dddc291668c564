package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/config"
)

func TestIsBetween(t *testing.T) {
	a := mgl32.Vec2{0, 0}
	b := mgl32.Vec2{4, 2}

	tests := []struct {
		name string
		c    mgl32.Vec2
		want bool
	}{
		{name: "start point", c: a, want: true},
		{name: "end point", c: b, want: true},
		{name: "midpoint", c: mgl32.Vec2{2, 1}, want: true},
		{name: "beyond end along line", c: mgl32.Vec2{6, 3}, want: false},
		{name: "before start along line", c: mgl32.Vec2{-2, -1}, want: false},
		{name: "off the line", c: mgl32.Vec2{2, 2}, want: false},
		{name: "within epsilon of line", c: mgl32.Vec2{2, 1.001}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBetween(a, b, tt.c, 0.01); got != tt.want {
				t.Errorf("IsBetween(%v, %v, %v) = %v, want %v", a, b, tt.c, got, tt.want)
			}
		})
	}
}

func TestGenerateHotdogPath(t *testing.T) {
	cfg := config.DefaultGameplayConfig().Hotdog
	rng := &SequenceSource{Values: []float32{0.5, 0.25, 0.5, 1.0, 0.75}}

	points := GenerateHotdogPath(rng, cfg)

	// x0 = -5 + 0.5*10 = 0
	if points[0] != (mgl32.Vec3{0, 9, 0.1}) {
		t.Errorf("unexpected spawn point %v", points[0])
	}
	// x1 = -5 + 0.25*10 = -2.5, y1 = 0.5 * 9 = 4.5
	if points[1] != (mgl32.Vec3{-2.5, 4.5, 0.1}) {
		t.Errorf("unexpected point 1 %v", points[1])
	}
	// x2 = -5 + 1.0*10 = 5, y2 被强制为 0
	if points[2] != (mgl32.Vec3{5, 0, 0.1}) {
		t.Errorf("unexpected point 2 %v", points[2])
	}
}

func TestGenerateHotdogPathStaysInRange(t *testing.T) {
	cfg := config.DefaultGameplayConfig().Hotdog
	rng := NewRandomSource(7)

	for i := 0; i < 200; i++ {
		points := GenerateHotdogPath(rng, cfg)
		for j, p := range points {
			if p.X() < cfg.XRange.Min || p.X() > cfg.XRange.Max {
				t.Fatalf("point %d x=%f out of range", j, p.X())
			}
			if p.Z() != cfg.Depth {
				t.Fatalf("point %d z=%f, want %f", j, p.Z(), cfg.Depth)
			}
		}
		if points[0].Y() != cfg.SpawnY || points[2].Y() != 0 {
			t.Fatalf("unexpected path endpoints %v", points)
		}
		if points[1].Y() < 0 || points[1].Y() > points[0].Y() {
			t.Fatalf("point 1 y=%f not in [0, %f]", points[1].Y(), points[0].Y())
		}
	}
}

func TestStepAlongSegment(t *testing.T) {
	a := mgl32.Vec2{0, 0}
	b := mgl32.Vec2{3, 0}

	pos, arrived := StepAlongSegment(a, a, b, 1.5, 1.0, 0.01)
	if arrived {
		t.Fatal("should not arrive after 1.5 of 3 units")
	}
	if pos.Sub(mgl32.Vec2{1.5, 0}).Len() >= 1e-5 {
		t.Errorf("expected (1.5, 0), got %v", pos)
	}

	// 零时间步不移动
	still, arrived := StepAlongSegment(pos, a, b, 1.5, 0, 0.01)
	if arrived || still != pos {
		t.Errorf("zero dt should not move: got %v arrived=%v", still, arrived)
	}

	// 越过终点视为到达
	end, arrived := StepAlongSegment(pos, a, b, 1.5, 2.0, 0.01)
	if !arrived || end != b {
		t.Errorf("expected arrival at %v, got %v arrived=%v", b, end, arrived)
	}

	// 退化线段立即到达
	if _, arrived := StepAlongSegment(a, a, a, 1.5, 0, 0.01); !arrived {
		t.Error("degenerate segment should count as arrived")
	}
}

func TestApplePosition(t *testing.T) {
	initPos := mgl32.Vec3{-6, 4, 0}
	initVel := mgl32.Vec3{8, 0, 1}

	tests := []struct {
		time float32
		want mgl32.Vec3
	}{
		{time: 0, want: mgl32.Vec3{-6, 4, 0}},
		{time: 1, want: mgl32.Vec3{2, 4, 0.5}},
		{time: 2, want: mgl32.Vec3{10, 4, 0}},
	}

	for _, tt := range tests {
		got := ApplePosition(initPos, initVel, -1, tt.time)
		if got.Sub(tt.want).Len() >= 1e-5 {
			t.Errorf("ApplePosition(t=%.1f) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestInBox(t *testing.T) {
	center := mgl32.Vec3{1, 1, 1}
	radius := mgl32.Vec3{0.5, 0.5, 0.5}

	if !InBox(mgl32.Vec3{1.5, 0.5, 1}, center, radius) {
		t.Error("point on the box boundary should be inside")
	}
	if InBox(mgl32.Vec3{1.6, 1, 1}, center, radius) {
		t.Error("point outside on x should not be inside")
	}
	if InBox(mgl32.Vec3{1, 1, 0.4}, center, radius) {
		t.Error("point outside on z should not be inside")
	}
}

func TestRandRange(t *testing.T) {
	rng := &SequenceSource{Values: []float32{0, 0.5}}
	if v := RandRange(rng, -2, 2); v != -2 {
		t.Errorf("expected -2, got %f", v)
	}
	if v := RandRange(rng, -2, 2); v != 0 {
		t.Errorf("expected 0, got %f", v)
	}
	empty := &SequenceSource{}
	if v := empty.Float32(); v != 0 {
		t.Errorf("empty sequence should yield 0, got %f", v)
	}
}
