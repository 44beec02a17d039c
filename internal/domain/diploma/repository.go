package diploma

import (
	"context"

	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

// SearchQuery carries the public search criteria. Zero values mean
// "not filtered on". StudentName is a partial, case-insensitive match;
// everything else is equality.
type SearchQuery struct {
	DiplomaNumber string
	StudentName   string
	StudentID     string
	EntryNumber   int
	BirthDate     string
	DecisionID    uint
}

// CriteriaCount reports how many search fields are actually set.
func (q SearchQuery) CriteriaCount() int {
	n := 0
	if q.DiplomaNumber != "" {
		n++
	}
	if q.StudentName != "" {
		n++
	}
	if q.StudentID != "" {
		n++
	}
	if q.EntryNumber > 0 {
		n++
	}
	if q.BirthDate != "" {
		n++
	}
	if q.DecisionID > 0 {
		n++
	}
	return n
}

type Repository interface {
	// -------- Books --------
	GetBook(
		ctx context.Context,
		id uint,
	) (*models.DiplomaBook, error)

	// CreateDiplomaInBook reserves the book's next entry number and
	// inserts the diploma with it as one atomic unit. On success
	// d.EntryNumber holds the reserved number and the book counter has
	// moved past it; on failure neither change is visible.
	CreateDiplomaInBook(
		ctx context.Context,
		d *models.Diploma,
	) error

	// -------- Decisions --------
	GetDecision(
		ctx context.Context,
		id uint,
	) (*models.GraduationDecision, error)

	ListDecisions(
		ctx context.Context,
	) ([]models.GraduationDecision, error)

	// IncrementSearchCount adds one to the decision's counter as a
	// single atomic update; an absent count reads as zero.
	IncrementSearchCount(
		ctx context.Context,
		decisionID uint,
	) error

	// -------- Search --------
	GetDiploma(
		ctx context.Context,
		id uint,
	) (*models.Diploma, error)

	SearchDiplomas(
		ctx context.Context,
		q SearchQuery,
	) ([]models.Diploma, error)
}
