package entity

import (
	"fmt"
)

type PurchaseResult struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	PurchaseID string      `json:"purchase_id"`
	AccountID  int64       `json:"account_id"`
	Totals     OrderTotals `json:"totals"`
}

func NewPurchaseResult(purchaseID string, accountID int64, totals OrderTotals) PurchaseResult {
	return PurchaseResult{
		Success:    true,
		Message:    fmt.Sprintf("purchased %d tickets for %s, %d seats reserved", totals.Quantity, totals.TotalPrice.StringFixed(2), totals.TotalSeats),
		PurchaseID: purchaseID,
		AccountID:  accountID,
		Totals:     totals,
	}
}
