package diploma

import (
	"context"
	"testing"
	"time"

	"github.com/HuongNguyenDev/beautycare-admin/internal/counter"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
)

type recordingIncrementer struct {
	bumped chan uint
}

func (r *recordingIncrementer) IncrementSearchCount(_ context.Context, decisionID uint) error {
	r.bumped <- decisionID
	return nil
}

func TestLookupDiplomaBumpsDecisionCounter(t *testing.T) {
	repo := searchFixture()
	inc := &recordingIncrementer{bumped: make(chan uint, 1)}
	uc := NewLookupDiploma(repo, counter.NewDispatcher(inc))

	got, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DecisionNumber != "QD-2024/15" {
		t.Errorf("decisionNumber = %q, want QD-2024/15", got.DecisionNumber)
	}

	select {
	case id := <-inc.bumped:
		if id != 7 {
			t.Errorf("bumped decision %d, want 7", id)
		}
	case <-time.After(time.Second):
		t.Fatal("lookup never bumped the decision counter")
	}
}

func TestLookupDiplomaWithoutDecision(t *testing.T) {
	repo := searchFixture()
	inc := &recordingIncrementer{bumped: make(chan uint, 1)}
	uc := NewLookupDiploma(repo, counter.NewDispatcher(inc))

	got, err := uc.Execute(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DecisionNumber != unknownLabel {
		t.Errorf("decisionNumber = %q, want %q", got.DecisionNumber, unknownLabel)
	}

	select {
	case id := <-inc.bumped:
		t.Errorf("lookup without a decision bumped counter %d", id)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLookupDiplomaNotFound(t *testing.T) {
	repo := searchFixture()
	inc := &recordingIncrementer{bumped: make(chan uint, 1)}
	uc := NewLookupDiploma(repo, counter.NewDispatcher(inc))

	_, err := uc.Execute(context.Background(), 99)
	code, _ := httperr.BusinessCode(err)
	if code != "diploma_not_found" {
		t.Errorf("code = %q, want diploma_not_found", code)
	}
}

func TestIncrementSearchCountFromZero(t *testing.T) {
	repo := searchFixture()

	if err := repo.IncrementSearchCount(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dec, err := repo.GetDecision(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if dec.SearchCount != 1 {
		t.Errorf("searchCount = %d after first lookup, want 1", dec.SearchCount)
	}
}
