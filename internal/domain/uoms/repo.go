package uoms

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// List возвращает справочник единиц в порядке id.
func (r *Repo) List(ctx context.Context) ([]UnitOfMeasure, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, abbreviation
		FROM uoms
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UnitOfMeasure
	for rows.Next() {
		var u UnitOfMeasure
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Unresolved возвращает записи справочника, которые не сводятся ни к одной известной единице.
func Unresolved(list []UnitOfMeasure) []UnitOfMeasure {
	var out []UnitOfMeasure
	for _, u := range list {
		if _, err := ResolveUoM(u); err != nil {
			out = append(out, u)
		}
	}
	return out
}

// FromCatalog строит справочник из встроенных единиц, когда БД не подключена.
func FromCatalog() []UnitOfMeasure {
	out := make([]UnitOfMeasure, 0, len(catalog))
	for i, u := range catalog {
		out = append(out, UnitOfMeasure{ID: int64(i + 1), Name: u.Name, Abbreviation: u.Abbreviation})
	}
	return out
}

// StaticList отдаёт фиксированный справочник, тот же интерфейс что у Repo.
type StaticList []UnitOfMeasure

func (s StaticList) List(context.Context) ([]UnitOfMeasure, error) {
	out := make([]UnitOfMeasure, len(s))
	copy(out, s)
	return out, nil
}
