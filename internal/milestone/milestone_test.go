package milestone

import "testing"

func TestEvaluateFiresAtMostOnce(t *testing.T) {
	e := NewEvaluator()

	fired := e.Evaluate(100, 0, 0)
	if len(fired) != 1 {
		t.Fatalf("fired = %d messages, want 1", len(fired))
	}
	if fired[0] != "Primeiro Centenário! 100 XP alcançados! 💯" {
		t.Errorf("message = %q", fired[0])
	}

	// Same stats again: nothing new fires.
	if fired := e.Evaluate(100, 0, 0); len(fired) != 0 {
		t.Errorf("second evaluation fired %d messages, want 0", len(fired))
	}

	// Stats dropping below the threshold does not un-fire it.
	if fired := e.Evaluate(50, 0, 0); len(fired) != 0 {
		t.Errorf("evaluation after drop fired %d messages, want 0", len(fired))
	}
}

func TestEvaluateTableOrder(t *testing.T) {
	e := NewEvaluator()

	// Crossing several thresholds at once returns them in declaration order.
	fired := e.Evaluate(600, 7, 5)
	want := []string{
		"Primeiro Centenário! 100 XP alcançados! 💯",
		"Meio Milhar! 500 XP conquistados! 🎯",
		"Semana Completa! 7 dias consecutivos! 🔥",
		"Colecionador! 5 hábitos diferentes! 📚",
	}
	if len(fired) != len(want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired[%d] = %q, want %q", i, fired[i], want[i])
		}
	}
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name       string
		xp         int
		streak     int
		habitCount int
		wantCount  int
	}{
		{"nothing crossed", 99, 6, 4, 0},
		{"xp exactly at threshold", 100, 0, 0, 1},
		{"all xp milestones", 1000, 0, 0, 3},
		{"both streak milestones", 0, 30, 0, 2},
		{"both habit milestones", 0, 0, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator()
			if fired := e.Evaluate(tt.xp, tt.streak, tt.habitCount); len(fired) != tt.wantCount {
				t.Errorf("fired %d messages, want %d", len(fired), tt.wantCount)
			}
		})
	}
}

func TestSeedSuppressesReplay(t *testing.T) {
	e := NewEvaluator()
	e.Seed([]string{"Primeiro Centenário! 100 XP alcançados! 💯"})

	fired := e.Evaluate(150, 0, 0)
	if len(fired) != 0 {
		t.Errorf("seeded milestone replayed: %v", fired)
	}
}

func TestReset(t *testing.T) {
	e := NewEvaluator()
	e.Evaluate(100, 0, 0)
	e.Reset()

	if fired := e.Evaluate(100, 0, 0); len(fired) != 1 {
		t.Errorf("after reset fired %d messages, want 1", len(fired))
	}
}
