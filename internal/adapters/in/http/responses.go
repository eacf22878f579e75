package http

import "time"

// DeliveryOrderResponse is one order in the GET /orders listing.
type DeliveryOrderResponse struct {
	ID            string    `json:"id"`
	TxRef         string    `json:"tx_ref"`
	OrderNumber   string    `json:"order_number"`
	SenderID      string    `json:"sender_id"`
	RiderID       *string   `json:"rider_id,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	DeliveryFee   int64     `json:"delivery_fee"`
	TotalPrice    int64     `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}

// WalletResponse is the GET /wallet statement body.
type WalletResponse struct {
	WalletID      string                      `json:"wallet_id"`
	OwnerID       string                      `json:"owner_id"`
	Balance       int64                       `json:"balance"`
	EscrowBalance int64                       `json:"escrow_balance"`
	Transactions  []WalletTransactionResponse `json:"transactions"`
}

// WalletTransactionResponse is one ledger entry in the statement.
type WalletTransactionResponse struct {
	ID              string    `json:"id"`
	TxRef           string    `json:"tx_ref"`
	Amount          int64     `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	Label           string    `json:"label"`
	Reason          string    `json:"reason"`
	Actor           string    `json:"actor"`
	CreatedAt       time.Time `json:"created_at"`
}
