package database

import (
	"database/sql"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS thesis_orders (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    phone_num VARCHAR NOT NULL,
    thesis_type TEXT NOT NULL,
    cover_color TEXT NOT NULL,
    thesis_title TEXT NOT NULL,
    faculty TEXT NOT NULL,
    year INTEGER NOT NULL,
    study_acronym VARCHAR NOT NULL,
    matrix_num VARCHAR NOT NULL,
    color_pages INTEGER NOT NULL DEFAULT 0,
    black_white_pages INTEGER NOT NULL DEFAULT 1,
    copies INTEGER NOT NULL DEFAULT 1,
    cd_burn BOOLEAN NOT NULL DEFAULT FALSE,
    cd_label TEXT,
    cd_copies INTEGER,
    collection_date DATE NOT NULL,
    collection_method TEXT,
    address TEXT,
    status TEXT NOT NULL DEFAULT 'Pending',
    order_no VARCHAR NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS prices (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    amount REAL NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_thesis_orders_created_at ON thesis_orders(created_at);
CREATE INDEX IF NOT EXISTS idx_thesis_orders_status ON thesis_orders(status);
`

// Unit prices seeded on first start so the order form and the receipt have a
// working table before the admin edits anything.
const seedPricesSQL = `
INSERT INTO prices (name, amount) VALUES
    ('blackWhite', 0.15),
    ('color', 1.50),
    ('hardSoftBinding', 25.00),
    ('stickerLabel', 10.00),
    ('paperLabel', 5.00),
    ('delivery', 10.00)
ON CONFLICT (name) DO NOTHING;
`

func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	if _, err := db.Exec(seedPricesSQL); err != nil {
		return fmt.Errorf("failed to seed prices: %w", err)
	}
	return nil
}
