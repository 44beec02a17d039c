package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/diploma"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

const pgUniqueViolation = "23505"

type DiplomaGormRepository struct {
	db *gorm.DB
}

func NewDiplomaGormRepository(db *gorm.DB) *DiplomaGormRepository {
	return &DiplomaGormRepository{db: db}
}

// --------------------------------------------------
// Books
// --------------------------------------------------

func (r *DiplomaGormRepository) GetBook(
	ctx context.Context,
	id uint,
) (*models.DiplomaBook, error) {

	var book models.DiplomaBook
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateDiplomaInBook runs the numbering sequence as one transaction:
// the book row is locked FOR UPDATE, so two racing creations serialize
// and can never both observe the same counter value. If the insert or
// the counter bump fails, both roll back together.
func (r *DiplomaGormRepository) CreateDiplomaInBook(
	ctx context.Context,
	d *models.Diploma,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var book models.DiplomaBook
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, d.DiplomaBookID).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("book_not_found")
			}
			return err
		}

		next := book.NextEntryNumber()
		d.EntryNumber = next

		if err := tx.Create(d).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return httperr.ErrBusiness("duplicate_diploma_number")
			}
			return err
		}

		return tx.Model(&book).
			Update("current_entry_number", next+1).Error
	})
}

// --------------------------------------------------
// Decisions
// --------------------------------------------------

func (r *DiplomaGormRepository) GetDecision(
	ctx context.Context,
	id uint,
) (*models.GraduationDecision, error) {

	var dec models.GraduationDecision
	if err := r.db.WithContext(ctx).First(&dec, id).Error; err != nil {
		return nil, err
	}
	return &dec, nil
}

func (r *DiplomaGormRepository) ListDecisions(
	ctx context.Context,
) ([]models.GraduationDecision, error) {

	var decisions []models.GraduationDecision
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// IncrementSearchCount is one UPDATE, so concurrent lookups each land
// exactly one increment. COALESCE covers rows predating the column.
func (r *DiplomaGormRepository) IncrementSearchCount(
	ctx context.Context,
	decisionID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.GraduationDecision{}).
		Where("id = ?", decisionID).
		Update("search_count", gorm.Expr("COALESCE(search_count, 0) + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("decision_not_found")
	}
	return nil
}

// --------------------------------------------------
// Search
// --------------------------------------------------

func (r *DiplomaGormRepository) GetDiploma(
	ctx context.Context,
	id uint,
) (*models.Diploma, error) {

	var d models.Diploma
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DiplomaGormRepository) SearchDiplomas(
	ctx context.Context,
	q domain.SearchQuery,
) ([]models.Diploma, error) {

	tx := r.db.WithContext(ctx).Model(&models.Diploma{})

	if q.DiplomaNumber != "" {
		tx = tx.Where("diploma_number = ?", q.DiplomaNumber)
	}
	if q.StudentName != "" {
		tx = tx.Where("student_name ILIKE ?", "%"+q.StudentName+"%")
	}
	if q.StudentID != "" {
		tx = tx.Where("student_id = ?", q.StudentID)
	}
	if q.EntryNumber > 0 {
		tx = tx.Where("entry_number = ?", q.EntryNumber)
	}
	if q.BirthDate != "" {
		tx = tx.Where("birth_date = ?", q.BirthDate)
	}
	if q.DecisionID > 0 {
		tx = tx.Where("decision_id = ?", q.DecisionID)
	}

	var diplomas []models.Diploma
	if err := tx.Order("entry_number ASC").Find(&diplomas).Error; err != nil {
		return nil, err
	}
	return diplomas, nil
}

// Compile-time check
var _ domain.Repository = (*DiplomaGormRepository)(nil)
