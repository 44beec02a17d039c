package diploma

import (
	"context"

	"github.com/HuongNguyenDev/beautycare-admin/internal/counter"
	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/diploma"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
)

// LookupDiploma serves the public detail view. Opening a diploma that
// belongs to a graduation decision bumps that decision's search count;
// the bump is fire-and-forget and never delays or fails the lookup.
type LookupDiploma struct {
	repo    domain.Repository
	counter *counter.Dispatcher
}

func NewLookupDiploma(
	repo domain.Repository,
	counter *counter.Dispatcher,
) *LookupDiploma {
	return &LookupDiploma{
		repo:    repo,
		counter: counter,
	}
}

func (uc *LookupDiploma) Execute(
	ctx context.Context,
	diplomaID uint,
) (*SearchResult, error) {

	d, err := uc.repo.GetDiploma(ctx, diplomaID)
	if err != nil {
		return nil, httperr.ErrBusiness("diploma_not_found")
	}

	res := &SearchResult{
		Diploma:            *d,
		DecisionNumber:     unknownLabel,
		DecisionIssuedDate: unknownLabel,
	}

	if d.DecisionID != nil {
		if dec, err := uc.repo.GetDecision(ctx, *d.DecisionID); err == nil {
			res.DecisionNumber = dec.DecisionNumber
			res.DecisionIssuedDate = dec.IssuedDate
		}

		uc.counter.Bump(*d.DecisionID)
	}

	return res, nil
}
