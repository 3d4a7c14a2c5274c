package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ticketservice/entity"
)

func InitializeDatabaseSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS ticket_prices (
			ticket_type VARCHAR(16) PRIMARY KEY,
			unit_price NUMERIC(10, 2) NOT NULL CHECK (unit_price >= 0),
			seats_per_ticket INT NOT NULL CHECK (seats_per_ticket >= 0),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("could not create ticket_prices table: %w", err)
	}

	return seedTicketPrices(context.Background(), db)
}

// seedTicketPrices inserts default prices, prices that are already stored are not changed.
func seedTicketPrices(ctx context.Context, db *sqlx.DB) error {
	for ticketType, price := range entity.DefaultTicketPrices() {
		_, err := db.ExecContext(ctx, `
			INSERT INTO ticket_prices (ticket_type, unit_price, seats_per_ticket)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING -- keep prices changed by operators
		`, ticketType.String(), price.UnitPrice, price.SeatsPerTicket)
		if err != nil {
			return fmt.Errorf("could not seed price of %s: %w", ticketType, err)
		}
	}

	return nil
}
