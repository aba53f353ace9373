package domain

import "testing"

func TestCaseStatus_Open(t *testing.T) {
	if !CasePending.Open() {
		t.Fatal("pending must be open")
	}
	for _, s := range []CaseStatus{CaseAccepted, CaseReady, CaseCompleted, CaseCancelled, CaseSafe, CaseExpired} {
		if s.Open() {
			t.Fatalf("%s must not be open", s)
		}
	}
}

func TestCaseStatus_Terminal(t *testing.T) {
	for _, s := range []CaseStatus{CaseCompleted, CaseCancelled, CaseSafe, CaseExpired} {
		if !s.Terminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
	for _, s := range []CaseStatus{CasePending, CaseAccepted, CaseReady} {
		if s.Terminal() {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

func TestCase_LastSignalID(t *testing.T) {
	c := &Case{}
	if _, ok := c.LastSignalID(); ok {
		t.Fatal("empty sos_list must report no signal")
	}

	// ids are monotonic but the list order is arbitrary
	c.SosList = []int64{205, 100, 150}
	id, ok := c.LastSignalID()
	if !ok || id != 205 {
		t.Fatalf("want 205, got %d (ok=%v)", id, ok)
	}
}
