package diploma

import (
	"context"
	"testing"

	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/diploma"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

func searchFixture() *fakeDiplomaRepo {
	repo := newFakeDiplomaRepo()
	repo.books[1] = models.DiplomaBook{ID: 1, Year: 2024, CurrentEntryNumber: 3}
	repo.decisions[7] = models.GraduationDecision{
		ID: 7, DecisionNumber: "QD-2024/15", IssuedDate: "2024-06-15", DiplomaBookID: 1,
	}

	decisionID := uint(7)
	repo.diplomas[1] = models.Diploma{
		ID: 1, EntryNumber: 1, DiplomaNumber: "VB-2024-001",
		StudentName: "Nguyễn Văn An", StudentID: "SV001",
		BirthDate: "2002-03-15", DiplomaBookID: 1, DecisionID: &decisionID,
	}
	repo.diplomas[2] = models.Diploma{
		ID: 2, EntryNumber: 2, DiplomaNumber: "VB-2024-002",
		StudentName: "Trần Thị Bình", StudentID: "SV002",
		BirthDate: "2001-11-02", DiplomaBookID: 1,
	}
	return repo
}

func TestSearchDiplomasCriteriaRule(t *testing.T) {
	uc := NewSearchDiplomas(searchFixture(), nil)

	tests := []struct {
		name string
		q    domain.SearchQuery
	}{
		{"no criteria", domain.SearchQuery{}},
		{"single criterion", domain.SearchQuery{StudentID: "SV001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.q)
			code, _ := httperr.BusinessCode(err)
			if code != "too_few_criteria" {
				t.Errorf("code = %q, want too_few_criteria", code)
			}
		})
	}
}

func TestSearchDiplomasEnrichment(t *testing.T) {
	uc := NewSearchDiplomas(searchFixture(), nil)

	got, err := uc.Execute(context.Background(), domain.SearchQuery{
		StudentID: "SV001",
		BirthDate: "2002-03-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}

	if got[0].DecisionNumber != "QD-2024/15" {
		t.Errorf("decisionNumber = %q, want QD-2024/15", got[0].DecisionNumber)
	}
	if got[0].DecisionIssuedDate != "2024-06-15" {
		t.Errorf("decisionIssuedDate = %q, want 2024-06-15", got[0].DecisionIssuedDate)
	}
}

func TestSearchDiplomasUnknownDecision(t *testing.T) {
	uc := NewSearchDiplomas(searchFixture(), nil)

	got, err := uc.Execute(context.Background(), domain.SearchQuery{
		StudentID: "SV002",
		BirthDate: "2001-11-02",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}

	if got[0].DecisionNumber != unknownLabel {
		t.Errorf("decisionNumber = %q, want %q", got[0].DecisionNumber, unknownLabel)
	}
	if got[0].DecisionIssuedDate != unknownLabel {
		t.Errorf("decisionIssuedDate = %q, want %q", got[0].DecisionIssuedDate, unknownLabel)
	}
}

func TestSearchDiplomasPartialName(t *testing.T) {
	uc := NewSearchDiplomas(searchFixture(), nil)

	got, err := uc.Execute(context.Background(), domain.SearchQuery{
		StudentName: "văn an",
		BirthDate:   "2002-03-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].StudentID != "SV001" {
		t.Fatalf("partial name match returned %d results", len(got))
	}
}

func TestSearchDiplomasNoMatch(t *testing.T) {
	uc := NewSearchDiplomas(searchFixture(), nil)

	got, err := uc.Execute(context.Background(), domain.SearchQuery{
		StudentID: "SV001",
		BirthDate: "1999-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d results, want 0", len(got))
	}
}
