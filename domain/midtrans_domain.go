package domain

import "errors"

const (
	PremiumPriceIDR int64 = 49000
)

var (
	MessageSuccessWebhook = "webhook processed"
	MessageFailedWebhook  = "failed to process webhook"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyPremium      = errors.New("user is already premium")
)

type (
	SubscribeResponse struct {
		OrderID     string `json:"order_id"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
