package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"sweet-paradise/config"
	"sweet-paradise/models"
)

type SweetRepository struct{}

func NewSweetRepository() *SweetRepository {
	return &SweetRepository{}
}

const sweetColumns = "id, name, category, price, quantity, image, created_at, updated_at"

func scanSweet(row pgx.Row) (*models.Sweet, error) {
	var s models.Sweet
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Image, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SweetRepository) GetAll(ctx context.Context) ([]models.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sweets := []models.Sweet{}
	for rows.Next() {
		var s models.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Image, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sweets = append(sweets, s)
	}
	return sweets, rows.Err()
}

// Search filters with case-insensitive substring matches on name and
// category and an inclusive price range.
func (r *SweetRepository) Search(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets`
	conditions := []string{}
	args := []interface{}{}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, "%"+filter.Category+"%")
		conditions = append(conditions, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sweets := []models.Sweet{}
	for rows.Next() {
		var s models.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Image, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sweets = append(sweets, s)
	}
	return sweets, rows.Err()
}

func (r *SweetRepository) GetByID(ctx context.Context, id int) (*models.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id = $1`
	return scanSweet(config.DB.QueryRow(ctx, query, id))
}

func (r *SweetRepository) Create(ctx context.Context, sweet *models.Sweet) error {
	query := `
		INSERT INTO sweets (name, category, price, quantity, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.Image, now,
	).Scan(&sweet.ID, &sweet.CreatedAt, &sweet.UpdatedAt)
}

func (r *SweetRepository) Update(ctx context.Context, sweet *models.Sweet) error {
	query := `UPDATE sweets SET name = $1, category = $2, price = $3, quantity = $4,
	          image = $5, updated_at = $6 WHERE id = $7`
	tag, err := config.DB.Exec(ctx, query,
		sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.Image, time.Now(), sweet.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *SweetRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DecrementStock takes one unit off the shelf only while stock remains.
// The conditional update keeps concurrent purchases of the last unit from
// both succeeding.
func (r *SweetRepository) DecrementStock(ctx context.Context, id int) (*models.Sweet, error) {
	query := `UPDATE sweets SET quantity = quantity - 1, updated_at = $2
	          WHERE id = $1 AND quantity > 0
	          RETURNING ` + sweetColumns

	sweet, err := scanSweet(config.DB.QueryRow(ctx, query, id, time.Now()))
	if errors.Is(err, models.ErrNotFound) {
		// No row updated: either the sweet is gone or the shelf is empty.
		if _, lookupErr := r.GetByID(ctx, id); lookupErr != nil {
			return nil, lookupErr
		}
		return nil, models.ErrOutOfStock
	}
	return sweet, err
}

func (r *SweetRepository) IncrementStock(ctx context.Context, id, amount int) (*models.Sweet, error) {
	query := `UPDATE sweets SET quantity = quantity + $2, updated_at = $3
	          WHERE id = $1
	          RETURNING ` + sweetColumns
	return scanSweet(config.DB.QueryRow(ctx, query, id, amount, time.Now()))
}
