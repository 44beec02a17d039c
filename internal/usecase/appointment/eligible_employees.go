package appointment

import (
	"context"

	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

// ListEligibleEmployees backs the employee picker of the booking form.
// It applies the same policy as appointment creation, so the picker
// never offers an employee the create call would then refuse.
type ListEligibleEmployees struct {
	repo   domain.Repository
	policy domain.Policy
}

func NewListEligibleEmployees(
	repo domain.Repository,
	policy domain.Policy,
) *ListEligibleEmployees {
	return &ListEligibleEmployees{
		repo:   repo,
		policy: policy,
	}
}

func (uc *ListEligibleEmployees) Execute(
	ctx context.Context,
	serviceID uint,
) ([]models.Employee, error) {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	employees, err := uc.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	return domain.EligibleEmployees(employees, svc, uc.policy), nil
}
