package app

import (
	"fmt"

	"floating-nodes/internal/core"
	"floating-nodes/internal/nodes"
	"floating-nodes/internal/render"
)

// Simulate runs cfg without a window for the given number of frames, with
// timestamps advancing at fps, and returns the statistics of every frame.
// Animation is forced on so the run is never stalled by pause_animation.
func Simulate(cfg nodes.Config, seed int64, frames, fps int) ([]nodes.FrameStats, error) {
	if frames < 0 {
		return nil, fmt.Errorf("simulate: negative frame count %d", frames)
	}
	cfg.PauseAnimation = false

	queue := core.NewFrameQueue()
	clock := core.NewManualClock(fps)
	engine, err := nodes.NewEngine(cfg, core.NewRNG(seed), queue, render.NewRecorder())
	if err != nil {
		return nil, err
	}
	engine.Start()
	defer engine.Stop()

	stats := make([]nodes.FrameStats, 0, frames)
	for len(stats) < frames {
		ran, err := queue.RunFrame(clock.Now())
		if err != nil {
			return stats, fmt.Errorf("simulate frame %d: %w", len(stats), err)
		}
		if !ran {
			break
		}
		stats = append(stats, engine.LastFrame())
	}
	return stats, nil
}
