package booking

import "github.com/HuongNguyenDev/beautycare-admin/internal/models"

// ===============================
// Eligibility
// ===============================

// Policy decides which employees may be assigned to a service. The
// booking flow must use the same policy on create and on edit, or an
// employee picked at creation could look invalid during an edit.
type Policy string

const (
	// PolicyByService: employee performs the service
	PolicyByService Policy = "service"

	// PolicyBySchedule: employee performs the service AND shares at
	// least one shift label with it
	PolicyBySchedule Policy = "schedule"
)

func ParsePolicy(s string) Policy {
	if Policy(s) == PolicyBySchedule {
		return PolicyBySchedule
	}
	return PolicyByService
}

func IsEligible(e *models.Employee, svc *models.Service, policy Policy) bool {
	if !e.PerformsService(svc.ID) {
		return false
	}

	if policy == PolicyBySchedule {
		return sharesShift(e.WorkSchedule, svc.WorkSchedule)
	}

	return true
}

func EligibleEmployees(employees []models.Employee, svc *models.Service, policy Policy) []models.Employee {
	out := make([]models.Employee, 0, len(employees))
	for i := range employees {
		if IsEligible(&employees[i], svc, policy) {
			out = append(out, employees[i])
		}
	}
	return out
}

func sharesShift(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
