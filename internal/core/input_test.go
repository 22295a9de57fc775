package core

import (
	"testing"
	"time"
)

func TestKeySet(t *testing.T) {
	s := NewKeySet(KeyLeft)

	if !s.Has(KeyLeft) {
		t.Error("KeySet should contain KeyLeft")
	}
	if s.Has(KeyRight) {
		t.Error("KeySet should not contain KeyRight")
	}

	s.Set(KeyD)
	if !s.Any(KeyRight, KeyD) {
		t.Error("Any(KeyRight, KeyD) should be true after Set(KeyD)")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}

	clone := s.Clone()
	clone.Set(KeyEscape)
	if s.Has(KeyEscape) {
		t.Error("Clone should not share storage with the original")
	}

	var zero KeySet
	if zero.Has(KeyLeft) || zero.Any(KeyLeft, KeyRight) {
		t.Error("zero KeySet should be empty")
	}
	zero.Set(KeyA)
	if !zero.Has(KeyA) {
		t.Error("Set on zero KeySet should work")
	}
}

func TestEvents(t *testing.T) {
	if QuitEvent().Type != EventQuit {
		t.Error("QuitEvent should have EventQuit type")
	}
	ev := KeyDownEvent(KeyEscape)
	if ev.Type != EventKeyDown || ev.Key != KeyEscape {
		t.Errorf("KeyDownEvent(KeyEscape) = %+v", ev)
	}
	if KeyEscape.String() != "Escape" || Key(99).String() != "Unknown" {
		t.Error("Key.String mismatch")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{" Blue ", ColorBlue, false},
		{"grey", ColorGray, false},
		{"ORANGE", ColorOrange, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.want)
			}
		})
	}

	if r, g, b := ColorRed.RGB(); r <= g || r <= b {
		t.Errorf("ColorRed.RGB() = (%d, %d, %d), expected red dominant", r, g, b)
	}
}

func TestClockTick(t *testing.T) {
	now := time.Unix(0, 0)
	var slept []time.Duration
	c := NewClock(
		func() time.Time { return now },
		func(d time.Duration) {
			slept = append(slept, d)
			now = now.Add(d)
		},
	)

	// First tick only records the time
	if d := c.Tick(50); d != 0 || len(slept) != 0 {
		t.Fatalf("first Tick should not wait, got %v / %v", d, slept)
	}

	// 5ms of work leaves 15ms of the 20ms frame
	now = now.Add(5 * time.Millisecond)
	if d := c.Tick(50); d != 20*time.Millisecond {
		t.Errorf("Tick() = %v, expected 20ms", d)
	}
	if len(slept) != 1 || slept[0] != 15*time.Millisecond {
		t.Errorf("slept %v, expected [15ms]", slept)
	}

	// An overrun frame does not sleep
	now = now.Add(30 * time.Millisecond)
	if d := c.Tick(50); d != 30*time.Millisecond {
		t.Errorf("Tick() = %v, expected 30ms", d)
	}
	if len(slept) != 1 {
		t.Errorf("overrun frame should not sleep, slept %v", slept)
	}
}
