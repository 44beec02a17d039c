package diploma

import (
	"context"
	"fmt"
	"time"

	"github.com/HuongNguyenDev/beautycare-admin/internal/cache"
	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/diploma"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

const (
	searchCacheTTL = 30 * time.Second

	// label the console shows for a reference it cannot resolve
	unknownLabel = "Không xác định"
)

// SearchResult is a diploma enriched with its graduation decision for
// the public result table.
type SearchResult struct {
	models.Diploma
	DecisionNumber     string `json:"decisionNumber"`
	DecisionIssuedDate string `json:"decisionIssuedDate"`
}

type SearchDiplomas struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewSearchDiplomas(
	repo domain.Repository,
	c *cache.Cache,
) *SearchDiplomas {
	return &SearchDiplomas{
		repo:  repo,
		cache: c,
	}
}

// Execute requires at least two filled criteria, the rule the old
// public page enforced before querying.
func (uc *SearchDiplomas) Execute(
	ctx context.Context,
	q domain.SearchQuery,
) ([]SearchResult, error) {

	if q.CriteriaCount() < 2 {
		return nil, httperr.ErrBusiness("too_few_criteria")
	}

	key := fmt.Sprintf(
		"diploma:search:%s:%s:%s:%d:%s:%d",
		q.DiplomaNumber, q.StudentName, q.StudentID,
		q.EntryNumber, q.BirthDate, q.DecisionID,
	)

	var cached []SearchResult
	if uc.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	diplomas, err := uc.repo.SearchDiplomas(ctx, q)
	if err != nil {
		return nil, err
	}

	decisions, err := uc.repo.ListDecisions(ctx)
	if err != nil {
		return nil, err
	}
	decisionByID := make(map[uint]*models.GraduationDecision, len(decisions))
	for i := range decisions {
		decisionByID[decisions[i].ID] = &decisions[i]
	}

	out := make([]SearchResult, 0, len(diplomas))
	for _, d := range diplomas {
		res := SearchResult{
			Diploma:            d,
			DecisionNumber:     unknownLabel,
			DecisionIssuedDate: unknownLabel,
		}
		if d.DecisionID != nil {
			if dec, ok := decisionByID[*d.DecisionID]; ok {
				res.DecisionNumber = dec.DecisionNumber
				res.DecisionIssuedDate = dec.IssuedDate
			}
		}
		out = append(out, res)
	}

	uc.cache.SetJSON(ctx, key, out, searchCacheTTL)

	return out, nil
}
