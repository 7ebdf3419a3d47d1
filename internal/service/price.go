package service

import (
	"context"
	"database/sql"
	"fmt"

	"zassprint/internal/model"
)

type PriceService struct {
	db *sql.DB
}

func NewPriceService(db *sql.DB) *PriceService {
	return &PriceService{db: db}
}

func (s *PriceService) List(ctx context.Context) (model.PriceList, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, amount FROM prices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	prices := make(model.PriceList, 0)
	for rows.Next() {
		var p model.PriceEntry
		if err := rows.Scan(&p.Name, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return prices, nil
}

// UpdateAll writes the six named unit prices in a single transaction, so a
// failed statement leaves the table untouched.
func (s *PriceService) UpdateAll(ctx context.Context, in *model.PriceUpdate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updates := []struct {
		name   string
		amount float64
	}{
		{model.PriceBlackWhite, in.BlackWhite},
		{model.PriceColor, in.Color},
		{model.PriceBinding, in.Binding},
		{model.PriceStickerLabel, in.StickerLabel},
		{model.PricePaperLabel, in.PaperLabel},
		{model.PriceDelivery, in.Delivery},
	}

	for _, u := range updates {
		if _, err = tx.ExecContext(ctx,
			`UPDATE prices SET amount = $1 WHERE name = $2`, u.amount, u.name,
		); err != nil {
			return fmt.Errorf("update price %s: %w", u.name, err)
		}
	}

	return tx.Commit()
}
