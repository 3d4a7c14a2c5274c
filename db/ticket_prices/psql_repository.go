package ticket_prices

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"ticketservice/entity"
)

type ticketPriceRow struct {
	TicketType     string          `db:"ticket_type"`
	UnitPrice      decimal.Decimal `db:"unit_price"`
	SeatsPerTicket int             `db:"seats_per_ticket"`
}

type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	if db == nil {
		panic("db must be set")
	}

	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetTicketPrices(ctx context.Context) (entity.TicketPrices, error) {
	var rows []ticketPriceRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT ticket_type, unit_price, seats_per_ticket
		FROM ticket_prices
	`)
	if err != nil {
		return nil, fmt.Errorf("could not select ticket prices: %w", err)
	}

	prices := make(entity.TicketPrices, len(rows))
	for _, row := range rows {
		ticketType, err := entity.ParseTicketType(row.TicketType)
		if err != nil {
			return nil, fmt.Errorf("unexpected ticket type in ticket_prices: %w", err)
		}

		prices[ticketType] = entity.TicketPrice{
			UnitPrice:      row.UnitPrice,
			SeatsPerTicket: row.SeatsPerTicket,
		}
	}

	return prices, nil
}
