package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/HuongNguyenDev/beautycare-admin/internal/cache"
	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/stats"
	"github.com/HuongNguyenDev/beautycare-admin/internal/validators"
)

const cacheTTL = 60 * time.Second

// RevenueReport loads the three collections and runs the pure
// aggregation, with a short Redis cache in front. Staleness is bounded
// by the TTL; writes do not invalidate.
type RevenueReport struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewRevenueReport(
	repo domain.Repository,
	c *cache.Cache,
) *RevenueReport {
	return &RevenueReport{
		repo:  repo,
		cache: c,
	}
}

func (uc *RevenueReport) Execute(
	ctx context.Context,
	start string,
	end string,
) (*stats.RevenueStats, error) {

	var dateRange *stats.DateRange

	switch {
	case start == "" && end == "":
		// no range: whole history
	case start == "" || end == "":
		return nil, httperr.ErrBusiness("invalid_request")
	default:
		if !validators.IsValidDate(start) || !validators.IsValidDate(end) {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		s, _ := time.Parse("2006-01-02", start)
		e, _ := time.Parse("2006-01-02", end)
		if e.Before(s) {
			return nil, httperr.ErrBusiness("invalid_request")
		}
		dateRange = &stats.DateRange{Start: s, End: e}
	}

	key := fmt.Sprintf("stats:revenue:%s:%s", start, end)

	var cached stats.RevenueStats
	if uc.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := uc.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	result := stats.Calculate(appointments, services, employees, dateRange)

	uc.cache.SetJSON(ctx, key, result, cacheTTL)

	return &result, nil
}
