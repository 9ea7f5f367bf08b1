package app

import (
	"errors"
	"reflect"
	"testing"

	"floating-nodes/internal/nodes"
)

func simConfig(count int) nodes.Config {
	cfg := nodes.DefaultConfig()
	cfg.Width = 300
	cfg.Height = 200
	cfg.InitialNodeCount = &count
	return cfg
}

func TestSimulateRunsEveryFrame(t *testing.T) {
	stats, err := Simulate(simConfig(6), 3, 25, 60)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(stats) != 25 {
		t.Fatalf("got %d frames, want 25", len(stats))
	}
	for i, s := range stats {
		if s.Nodes != 6 {
			t.Fatalf("frame %d rendered %d nodes", i, s.Nodes)
		}
	}
	if !stats[0].MovementUpdated {
		t.Fatalf("first frame should be due for a movement update")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(simConfig(10), 9, 40, 30)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, err := Simulate(simConfig(10), 9, 40, 30)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("runs with the same seed diverged")
	}
}

func TestSimulateIgnoresPause(t *testing.T) {
	cfg := simConfig(2)
	cfg.PauseAnimation = true
	stats, err := Simulate(cfg, 1, 5, 60)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(stats) != 5 {
		t.Fatalf("paused config stalled after %d frames", len(stats))
	}
}

func TestSimulateErrors(t *testing.T) {
	if _, err := Simulate(simConfig(1), 1, -1, 60); err == nil {
		t.Fatalf("expected an error for a negative frame count")
	}
	bad := simConfig(1)
	bad.Height = -1
	if _, err := Simulate(bad, 1, 1, 60); !errors.Is(err, nodes.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
