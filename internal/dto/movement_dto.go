package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordMovementRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Type      string  `json:"type"       validate:"required,oneof=in out"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	Notes     *string `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// MovementResult is returned on a successful record: the ledger entry id and
// the stock level it produced.
type MovementResult struct {
	ID       string `json:"id"`
	NewStock int    `json:"new_stock"`
}

type MovementResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Type        string  `json:"type"`
	Quantity    int     `json:"quantity"`
	Notes       *string `json:"notes"`
	Username    *string `json:"username"`
	CreatedAt   string  `json:"created_at"`
}
