package storage

import "testing"

func TestSaveAndGetActivations(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	first := &Activation{CursorX: 3, CursorY: 4, Success: true}
	if err := db.SaveActivation(first); err != nil {
		t.Fatalf("SaveActivation: %v", err)
	}
	if first.ID == 0 {
		t.Error("SaveActivation should set the ID")
	}

	second := &Activation{Success: false, ErrorMessage: "SendInput submitted 0 of 4 events"}
	if err := db.SaveActivation(second); err != nil {
		t.Fatalf("SaveActivation: %v", err)
	}

	got, err := db.GetActivations(10, 0)
	if err != nil {
		t.Fatalf("GetActivations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d activations, want 2", len(got))
	}

	// Newest first
	if got[0].ID != second.ID {
		t.Errorf("expected newest activation first, got ID %d", got[0].ID)
	}
	if got[0].Success || got[0].ErrorMessage != second.ErrorMessage {
		t.Errorf("failure record not round-tripped: %+v", got[0])
	}
	if got[1].CursorX != 3 || got[1].CursorY != 4 || !got[1].Success {
		t.Errorf("success record not round-tripped: %+v", got[1])
	}

	count, err := db.GetActivationCount()
	if err != nil {
		t.Fatalf("GetActivationCount: %v", err)
	}
	if count != 2 {
		t.Errorf("GetActivationCount = %d, want 2", count)
	}
}

func TestGetDailyStats(t *testing.T) {
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	for _, a := range []*Activation{
		{CursorX: 0, CursorY: 0, Success: true},
		{CursorX: 1, CursorY: 1, Success: true},
		{CursorX: 2, CursorY: 2, Success: false, ErrorMessage: "SendInput failed"},
	} {
		if err := db.SaveActivation(a); err != nil {
			t.Fatalf("SaveActivation: %v", err)
		}
	}

	stats, err := db.GetDailyStats(7)
	if err != nil {
		t.Fatalf("GetDailyStats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d days of stats, want 1", len(stats))
	}
	if stats[0].TotalActivations != 3 || stats[0].SuccessCount != 2 || stats[0].FailureCount != 1 {
		t.Errorf("unexpected daily stats: %+v", stats[0])
	}
}
