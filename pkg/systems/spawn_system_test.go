package systems

import (
	"testing"

	"github.com/gonewx/picnic/pkg/utils"
)

func TestSpawnSchedule(t *testing.T) {
	w := newTestWorld(t, &utils.SequenceSource{Values: []float32{0.5}})

	// 以 0.25 为步长推进，记录每种目标第一次和第二次出现的时间
	var hotdogTimes, appleTimes []float32
	elapsed := float32(0)
	for i := 0; i < 24; i++ {
		w.spawn.Update(0.25)
		elapsed += 0.25
		if len(w.gs.Hotdogs) > len(hotdogTimes) {
			hotdogTimes = append(hotdogTimes, elapsed)
		}
		if len(w.gs.Apples) > len(appleTimes) {
			appleTimes = append(appleTimes, elapsed)
		}
	}

	wantHotdog := []float32{3.0, 5.0}
	if len(hotdogTimes) != len(wantHotdog) {
		t.Fatalf("hotdog spawn times = %v, want %v", hotdogTimes, wantHotdog)
	}
	for i := range wantHotdog {
		if hotdogTimes[i] != wantHotdog[i] {
			t.Errorf("hotdog spawn %d at %.2f, want %.2f", i, hotdogTimes[i], wantHotdog[i])
		}
	}

	// 苹果没有初始延迟：1.0、2.0、3.0 各一个，之后达到上限
	wantApple := []float32{1.0, 2.0, 3.0}
	if len(appleTimes) != len(wantApple) {
		t.Fatalf("apple spawn times = %v, want %v", appleTimes, wantApple)
	}
	for i := range wantApple {
		if appleTimes[i] != wantApple[i] {
			t.Errorf("apple spawn %d at %.2f, want %.2f", i, appleTimes[i], wantApple[i])
		}
	}
}

func TestSpawnCaps(t *testing.T) {
	w := newTestWorld(t, utils.NewRandomSource(7))

	for i := 0; i < 40; i++ {
		w.spawn.Update(2.0)
	}
	if got := len(w.gs.Hotdogs); got != w.cfg.Spawn.Hotdog.MaxActive {
		t.Errorf("hotdogs = %d, want cap %d", got, w.cfg.Spawn.Hotdog.MaxActive)
	}
	if got := len(w.gs.Apples); got != w.cfg.Spawn.Apple.MaxActive {
		t.Errorf("apples = %d, want cap %d", got, w.cfg.Spawn.Apple.MaxActive)
	}

	// 达到上限时计时器继续累加，数量回落后立即生成
	if !w.spawn.AppleTimer().IsReady {
		t.Fatal("apple timer should stay ready while at cap")
	}
	w.gs.Apples = w.gs.Apples[1:]
	w.spawn.Update(0)
	if got := len(w.gs.Apples); got != w.cfg.Spawn.Apple.MaxActive {
		t.Errorf("apples after freeing a slot = %d, want %d", got, w.cfg.Spawn.Apple.MaxActive)
	}
	if w.spawn.AppleTimer().CurrentTime != 0 {
		t.Errorf("apple timer should restart after spawning, got %.2f", w.spawn.AppleTimer().CurrentTime)
	}
}

func TestSpawnedTargets(t *testing.T) {
	// 所有随机数取 0.5：热狗 x=0，路径 y 依次为 9、4.5、0；苹果 y=5，速度扰动为 0
	w := newTestWorld(t, &utils.SequenceSource{Values: []float32{0.5}})
	w.spawn.Update(3.0)

	if len(w.gs.Hotdogs) != 1 || len(w.gs.Apples) != 1 {
		t.Fatalf("hotdogs=%d apples=%d, want 1 and 1", len(w.gs.Hotdogs), len(w.gs.Apples))
	}

	h := w.gs.Hotdogs[0]
	if h.Points[0].X() != 0 || h.Points[0].Y() != 9 || h.Points[1].Y() != 4.5 || h.Points[2].Y() != 0 {
		t.Errorf("unexpected hotdog path %v", h.Points)
	}
	if got := w.transform(t, h.Body).Position; got != h.Points[0] {
		t.Errorf("hotdog body at %v, want spawn point %v", got, h.Points[0])
	}

	a := w.gs.Apples[0]
	if a.InitPos.X() != -6 || a.InitPos.Y() != 5 || a.InitPos.Z() != 0 {
		t.Errorf("apple init pos = %v", a.InitPos)
	}
	if a.InitVel.X() != 8 || a.InitVel.Z() != 1 {
		t.Errorf("apple init vel = %v", a.InitVel)
	}
	if w.gs.NextHotdogID() != 1 || w.gs.NextAppleID() != 1 {
		t.Error("each spawn should consume exactly one id")
	}
}
