package usableweights

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_form, product_modifier, grams
		FROM usable_product_weights
		ORDER BY product_form, product_modifier
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ProductForm, &e.ProductModifier, &e.Grams); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ReplaceAll заменяет таблицу целиком в одной транзакции.
func (r *Repo) ReplaceAll(ctx context.Context, entries []Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `DELETE FROM usable_product_weights`); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err = tx.Exec(ctx, `
			INSERT INTO usable_product_weights (product_form, product_modifier, grams, updated_at)
			VALUES ($1,$2,$3,now())
		`, e.ProductForm, e.ProductModifier, e.Grams); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
