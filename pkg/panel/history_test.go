package panel

import "testing"

func TestHistoryFillsUpToItsDepth(t *testing.T) {
	h := NewHistory(3)
	for i, v := range []float64{1, 2, 3} {
		h.Push(v)
		if h.Len() != i+1 {
			t.Fatalf("after %d pushes: Len=%d", i+1, h.Len())
		}
	}
	got := h.Samples()
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHistorySlidesOutTheOldestSample(t *testing.T) {
	h := NewHistory(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		h.Push(v)
	}
	if h.Len() != 3 {
		t.Fatalf("Len=%d, want the depth", h.Len())
	}
	got := h.Samples()
	want := []float64{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHistoryKeepsSamplesOldestFirst(t *testing.T) {
	h := NewHistory(4)
	h.Push(10)
	h.Push(20)
	got := h.Samples()
	if got[0] != 10 || got[1] != 20 {
		t.Errorf("samples %v, want oldest first", got)
	}
}

func TestHistoryClampsANonsenseDepth(t *testing.T) {
	h := NewHistory(0)
	h.Push(1)
	h.Push(2)
	if h.Len() != 1 {
		t.Fatalf("Len=%d, want 1", h.Len())
	}
	if h.Samples()[0] != 2 {
		t.Errorf("kept %v, want the newest sample", h.Samples()[0])
	}
}
