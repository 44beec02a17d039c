package stats

import (
	"sort"
	"time"

	"github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "01/2006"
)

type ServiceRevenue struct {
	ServiceID    uint    `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type EmployeeRevenue struct {
	EmployeeID   uint    `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type RevenueStats struct {
	ByService  []ServiceRevenue  `json:"byService"`
	ByEmployee []EmployeeRevenue `json:"byEmployee"`
	ByDate     []DateCount       `json:"byDate"`
	ByMonth    []MonthCount      `json:"byMonth"`
}

// DateRange is an inclusive [Start, End] interval of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r *DateRange) Contains(dateStr string) bool {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return false
	}
	if d.Before(truncateDay(r.Start)) {
		return false
	}
	if d.After(truncateDay(r.End)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Calculate derives the four report views from in-memory collections.
// Revenue (byService, byEmployee) counts completed appointments only
// and silently skips appointments whose service or employee no longer
// resolves. byDate and byMonth count every status, so the load charts
// include pending and cancelled slots. The date range, when given,
// applies to all four views.
func Calculate(
	appointments []models.Appointment,
	services []models.Service,
	employees []models.Employee,
	dateRange *DateRange,
) RevenueStats {

	filtered := appointments
	if dateRange != nil {
		filtered = make([]models.Appointment, 0, len(appointments))
		for _, ap := range appointments {
			if dateRange.Contains(ap.Date) {
				filtered = append(filtered, ap)
			}
		}
	}

	serviceByID := make(map[uint]*models.Service, len(services))
	for i := range services {
		serviceByID[services[i].ID] = &services[i]
	}
	employeeByID := make(map[uint]*models.Employee, len(employees))
	for i := range employees {
		employeeByID[employees[i].ID] = &employees[i]
	}

	return RevenueStats{
		ByService:  revenueByService(filtered, serviceByID),
		ByEmployee: revenueByEmployee(filtered, serviceByID, employeeByID),
		ByDate:     countByDate(filtered),
		ByMonth:    countByMonth(filtered),
	}
}

func revenueByService(
	appointments []models.Appointment,
	services map[uint]*models.Service,
) []ServiceRevenue {

	var out []ServiceRevenue
	idx := make(map[uint]int)

	for _, ap := range appointments {
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		svc, ok := services[ap.ServiceID]
		if !ok {
			continue
		}

		if i, seen := idx[ap.ServiceID]; seen {
			out[i].TotalRevenue += float64(svc.Price)
			continue
		}

		idx[ap.ServiceID] = len(out)
		out = append(out, ServiceRevenue{
			ServiceID:    ap.ServiceID,
			ServiceName:  svc.Name,
			TotalRevenue: float64(svc.Price),
		})
	}

	if out == nil {
		out = []ServiceRevenue{}
	}
	return out
}

func revenueByEmployee(
	appointments []models.Appointment,
	services map[uint]*models.Service,
	employees map[uint]*models.Employee,
) []EmployeeRevenue {

	var out []EmployeeRevenue
	idx := make(map[uint]int)

	for _, ap := range appointments {
		if booking.Status(ap.Status) != booking.StatusCompleted {
			continue
		}
		svc, ok := services[ap.ServiceID]
		if !ok {
			continue
		}
		emp, ok := employees[ap.EmployeeID]
		if !ok {
			continue
		}

		if i, seen := idx[ap.EmployeeID]; seen {
			out[i].TotalRevenue += float64(svc.Price)
			continue
		}

		idx[ap.EmployeeID] = len(out)
		out = append(out, EmployeeRevenue{
			EmployeeID:   ap.EmployeeID,
			EmployeeName: emp.Name,
			TotalRevenue: float64(svc.Price),
		})
	}

	if out == nil {
		out = []EmployeeRevenue{}
	}
	return out
}

func countByDate(appointments []models.Appointment) []DateCount {
	var out []DateCount
	idx := make(map[string]int)

	for _, ap := range appointments {
		if i, seen := idx[ap.Date]; seen {
			out[i].Count++
			continue
		}
		idx[ap.Date] = len(out)
		out = append(out, DateCount{Date: ap.Date, Count: 1})
	}

	// chronological, not lexical: dates that fail to parse sink to the front
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := time.Parse(dateLayout, out[i].Date)
		tj, _ := time.Parse(dateLayout, out[j].Date)
		return ti.Before(tj)
	})

	if out == nil {
		out = []DateCount{}
	}
	return out
}

func countByMonth(appointments []models.Appointment) []MonthCount {
	var out []MonthCount
	idx := make(map[string]int)

	for _, ap := range appointments {
		month := monthOf(ap.Date)
		if i, seen := idx[month]; seen {
			out[i].Count++
			continue
		}
		idx[month] = len(out)
		out = append(out, MonthCount{Month: month, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := time.Parse(monthLayout, out[i].Month)
		tj, _ := time.Parse(monthLayout, out[j].Month)
		return ti.Before(tj)
	})

	if out == nil {
		out = []MonthCount{}
	}
	return out
}

// monthOf truncates "2006-01-02" to the console's "MM/YYYY" label.
func monthOf(dateStr string) string {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format(monthLayout)
}
