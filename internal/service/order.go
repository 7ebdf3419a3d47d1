package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"zassprint/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	db *sql.DB
}

func NewOrderService(db *sql.DB) *OrderService {
	return &OrderService{db: db}
}

// Create allocates the next month-scoped order number and inserts the order
// in one transaction. A per-month advisory lock serializes concurrent
// submissions so two requests cannot allocate the same number.
func (s *OrderService) Create(ctx context.Context, in *model.ThesisOrderInput, now time.Time) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, monthLockKey(now)); err != nil {
		return "", fmt.Errorf("acquire month lock: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	var last string
	err = tx.QueryRowContext(ctx, `
		SELECT order_no FROM thesis_orders
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY order_no DESC
		LIMIT 1
	`, monthStart, nextMonthStart).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("query last order number: %w", err)
	}

	orderNo, err := nextOrderNumber(now, last)
	if err != nil {
		return "", fmt.Errorf("allocate order number: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO thesis_orders (
			name, phone_num, thesis_type, cover_color, thesis_title, faculty,
			year, study_acronym, matrix_num, color_pages, black_white_pages,
			copies, cd_burn, cd_label, cd_copies, collection_date,
			collection_method, address, status, order_no, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
	`,
		NormalizeName(in.Name), in.PhoneNumber, in.ThesisType, in.CoverColor,
		in.ThesisTitle, in.Faculty, in.Year, in.StudyAcronym, in.MatrixNumber,
		in.ColorPages, in.BlackWhitePages, in.Copies, in.CDBurn, in.CDLabel,
		in.CDCopies, in.CollectionDate, in.CollectionMethod, in.Address,
		model.StatusPending, orderNo, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", err)
	}

	return orderNo, nil
}

const selectOrderColumns = `
	SELECT id, name, phone_num, thesis_type, cover_color, thesis_title,
	       faculty, year, study_acronym, matrix_num, color_pages,
	       black_white_pages, copies, cd_burn, cd_label, cd_copies,
	       collection_date, collection_method, address, status, order_no,
	       created_at
	FROM thesis_orders
`

func (s *OrderService) List(ctx context.Context) ([]model.ThesisOrder, error) {
	rows, err := s.db.QueryContext(ctx, selectOrderColumns+` ORDER BY order_no DESC`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.ThesisOrder, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

func (s *OrderService) GetByOrderNo(ctx context.Context, orderNo string) (*model.ThesisOrder, error) {
	row := s.db.QueryRowContext(ctx, selectOrderColumns+` WHERE order_no = $1 LIMIT 1`, orderNo)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) GetStatus(ctx context.Context, orderNo string) (model.OrderStatus, error) {
	var status model.OrderStatus
	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM thesis_orders WHERE order_no = $1 LIMIT 1`, orderNo,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrOrderNotFound
		}
		return "", fmt.Errorf("query status: %w", err)
	}
	return status, nil
}

// UpdateStatus sets the status of the order with the given number. An
// unknown order number matches zero rows and is a silent no-op.
func (s *OrderService) UpdateStatus(ctx context.Context, orderNo string, status model.OrderStatus) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE thesis_orders SET status = $1 WHERE order_no = $2`, status, orderNo,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, orderNo string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM thesis_orders WHERE order_no = $1`, orderNo,
	)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.ThesisOrder, error) {
	var (
		o                model.ThesisOrder
		cdLabel          sql.NullString
		cdCopies         sql.NullInt64
		collectionMethod sql.NullString
		address          sql.NullString
	)

	err := row.Scan(
		&o.ID, &o.Name, &o.PhoneNumber, &o.ThesisType, &o.CoverColor,
		&o.ThesisTitle, &o.Faculty, &o.Year, &o.StudyAcronym, &o.MatrixNumber,
		&o.ColorPages, &o.BlackWhitePages, &o.Copies, &o.CDBurn, &cdLabel,
		&cdCopies, &o.CollectionDate, &collectionMethod, &address, &o.Status,
		&o.OrderNo, &o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}

	if cdLabel.Valid {
		o.CDLabel = &cdLabel.String
	}
	if cdCopies.Valid {
		n := int(cdCopies.Int64)
		o.CDCopies = &n
	}
	if collectionMethod.Valid {
		o.CollectionMethod = collectionMethod.String
	}
	if address.Valid {
		o.Address = &address.String
	}

	return &o, nil
}
