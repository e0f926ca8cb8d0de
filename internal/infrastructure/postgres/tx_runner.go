package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
	"github.com/jhoicas/ecommerce-catalog/internal/domain/repository"
)

var _ usecase.ReviewTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReview inicia una transacción, ejecuta fn con repos de productos y reseñas atados a la tx
// y hace Commit o Rollback. El alta de la reseña y el nuevo rating quedan juntos o no quedan.
func (r *TxRunner) RunReview(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewReviewRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
