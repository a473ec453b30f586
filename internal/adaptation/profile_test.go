package adaptation

import "testing"

func TestProfileTrackerRollingAverage(t *testing.T) {
	tracker := NewProfileTracker()
	tracker.Record("s1", "Japan", 0.9)
	tracker.Record("s2", "japan", 0.5)
	tracker.Record("s3", "germany", 0.8)

	profiles := tracker.Profiles()
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}

	// Sorted by context key: germany, then japan.
	germany := profiles[0]
	japan := profiles[1]

	if japan.Interactions != 2 {
		t.Errorf("japan interactions = %d, want 2 (case-insensitive context)", japan.Interactions)
	}
	if !almostEqual(japan.AverageAppropriateness, 0.7) {
		t.Errorf("japan average = %v, want 0.7", japan.AverageAppropriateness)
	}
	if len(japan.Strengths) != 1 || len(japan.Challenges) != 1 {
		t.Errorf("japan strengths/challenges = %d/%d, want 1/1",
			len(japan.Strengths), len(japan.Challenges))
	}

	if germany.Interactions != 1 || len(germany.Strengths) != 1 {
		t.Errorf("germany profile unexpected: %+v", germany)
	}
}

func TestProfileTrackerIsolation(t *testing.T) {
	// Two trackers (two runs) must not share state.
	a := NewProfileTracker()
	b := NewProfileTracker()
	a.Record("s1", "japan", 1.0)

	if len(b.Profiles()) != 0 {
		t.Error("fresh tracker should have no profiles")
	}
}
