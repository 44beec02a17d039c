package diploma

import (
	"context"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/diploma"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	"github.com/HuongNguyenDev/beautycare-admin/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateDiplomaInput struct {
	DiplomaBookID  uint
	DiplomaNumber  string
	StudentName    string
	StudentID      string
	Major          string
	TrainingType   string
	BirthDate      string
	Birthplace     string
	Ethnicity      string
	GPA            float64
	Ranking        string
	GraduationDate string
	DecisionID     *uint
}

// ======================================================
// USE CASE
// ======================================================

// CreateDiploma issues a diploma into a book. The entry number is not
// part of the input: it is reserved from the book counter inside the
// repository transaction, so concurrent issuance cannot duplicate it.
type CreateDiploma struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateDiploma(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateDiploma {
	return &CreateDiploma{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateDiploma) Execute(
	ctx context.Context,
	in CreateDiplomaInput,
) (*models.Diploma, error) {

	if !validators.IsValidDate(in.GraduationDate) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if in.BirthDate != "" && !validators.IsValidDate(in.BirthDate) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if _, err := uc.repo.GetBook(ctx, in.DiplomaBookID); err != nil {
		return nil, httperr.ErrBusiness("book_not_found")
	}

	if in.DecisionID != nil {
		if _, err := uc.repo.GetDecision(ctx, *in.DecisionID); err != nil {
			return nil, httperr.ErrBusiness("decision_not_found")
		}
	}

	d := &models.Diploma{
		DiplomaBookID:  in.DiplomaBookID,
		DiplomaNumber:  in.DiplomaNumber,
		StudentName:    in.StudentName,
		StudentID:      in.StudentID,
		Major:          in.Major,
		TrainingType:   in.TrainingType,
		BirthDate:      in.BirthDate,
		Birthplace:     in.Birthplace,
		Ethnicity:      in.Ethnicity,
		GPA:            in.GPA,
		Ranking:        in.Ranking,
		GraduationDate: in.GraduationDate,
		DecisionID:     in.DecisionID,
	}

	if err := uc.repo.CreateDiplomaInBook(ctx, d); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "diploma_issued",
		Entity:   "diploma",
		EntityID: &d.ID,
		Metadata: map[string]any{
			"bookId":      d.DiplomaBookID,
			"entryNumber": d.EntryNumber,
		},
	})

	return d, nil
}
