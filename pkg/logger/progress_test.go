package logger

import "testing"

func TestBatchProgress_TracksCompletion(t *testing.T) {
	bp := NewBatchProgress(50, "test run")

	bp.BatchDone(1, 3, 20)
	done, total, percentage := bp.Progress()
	if done != 20 || total != 50 {
		t.Errorf("Expected 20/50 after first batch, got %d/%d", done, total)
	}
	if percentage < 39.9 || percentage > 40.1 {
		t.Errorf("Expected 40%% after first batch, got %.1f", percentage)
	}

	bp.BatchDone(2, 3, 20)
	bp.BatchDone(3, 3, 10)
	done, total, percentage = bp.Progress()
	if done != 50 || total != 50 {
		t.Errorf("Expected 50/50 after final batch, got %d/%d", done, total)
	}
	if percentage != 100 {
		t.Errorf("Expected 100%% after final batch, got %.1f", percentage)
	}
}

func TestBatchProgress_EmptyRun(t *testing.T) {
	bp := NewBatchProgress(0, "empty run")

	done, total, percentage := bp.Progress()
	if done != 0 || total != 0 || percentage != 0 {
		t.Errorf("Expected zeroes for an empty run, got %d/%d at %.1f%%", done, total, percentage)
	}
}
