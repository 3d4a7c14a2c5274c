package gateway

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

type Payment struct {
	AccountID int64
	Amount    decimal.Decimal
}

type PaymentMock struct {
	mock sync.Mutex

	Payments []Payment
	Err      error
}

func (c *PaymentMock) MakePayment(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	c.mock.Lock()
	defer c.mock.Unlock()

	if c.Err != nil {
		return c.Err
	}

	c.Payments = append(c.Payments, Payment{AccountID: accountID, Amount: amount})

	return nil
}

func (c *PaymentMock) MadePayments() []Payment {
	c.mock.Lock()
	defer c.mock.Unlock()

	return append([]Payment(nil), c.Payments...)
}
