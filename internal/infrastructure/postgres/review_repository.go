package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-catalog/internal/domain/entity"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

const reviewColumns = `id, comment, grade, comment_date, is_active, user_id, product_id`

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL (usable con pool o tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una reseña y asigna el ID generado.
func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (comment, grade, comment_date, is_active, user_id, product_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		review.Comment, review.Grade, review.CommentDate, review.IsActive, review.UserID, review.ProductID,
	).Scan(&review.ID)
	if err != nil {
		return mapWriteError("insert review", err)
	}
	return nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (*entity.Review, error) {
	rv, err := scanReview(r.q.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	return noRows(rv, err, "get review by id")
}

// Update solo persiste el estado: una reseña no se edita.
func (r *ReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	_, err := r.q.Exec(ctx, `UPDATE reviews SET is_active = $2 WHERE id = $1`, review.ID, review.IsActive)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) ListActive(ctx context.Context) ([]*entity.Review, error) {
	return r.list(ctx, "list reviews", `SELECT `+reviewColumns+` FROM reviews WHERE is_active ORDER BY id`)
}

func (r *ReviewRepo) ListActiveByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE is_active AND product_id = $1 ORDER BY id`
	return r.list(ctx, "list reviews by product", query, productID)
}

// AverageGrade promedio exacto de grade sobre las reseñas activas del producto; 0 si no hay.
func (r *ReviewRepo) AverageGrade(ctx context.Context, productID int64) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(AVG(grade), 0) FROM reviews WHERE is_active AND product_id = $1`, productID,
	).Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("average grade: %w", err)
	}
	return avg, nil
}

func (r *ReviewRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Review, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

func scanReview(row rowScanner) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(&rv.ID, &rv.Comment, &rv.Grade, &rv.CommentDate, &rv.IsActive, &rv.UserID, &rv.ProductID)
	if err == nil {
		rv.CommentDate = rv.CommentDate.UTC()
	}
	return &rv, err
}
