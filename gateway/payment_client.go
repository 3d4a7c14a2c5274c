package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

type makePaymentRequest struct {
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type PaymentClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewPaymentClient(httpClient *http.Client, baseURL string) PaymentClient {
	if httpClient == nil {
		panic("missing httpClient")
	}

	return PaymentClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

func (c PaymentClient) MakePayment(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	return postJSON(ctx, c.httpClient, c.baseURL+"/payments", makePaymentRequest{
		AccountID: accountID,
		Amount:    amount,
	})
}
