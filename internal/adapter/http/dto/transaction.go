package dto

type TransactionItem struct {
	ID        uint64    `json:"id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	Note      *string   `json:"note,omitempty"`
	Category  *Category `json:"category,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// Amount is accepted as a JSON number or a decimal string.
type CreateTransactionRequest struct {
	Type       string  `json:"type" binding:"required,oneof=income expense investment"`
	Amount     Amount  `json:"amount" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Note       *string `json:"note" binding:"omitempty,max=65535"`
	CategoryID *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}

type UpdateTransactionRequest struct {
	Type       *string `json:"type" binding:"omitempty,oneof=income expense investment"`
	Amount     *Amount `json:"amount"`
	Date       *string `json:"date"`
	Note       *string `json:"note" binding:"omitempty,max=65535"`
	CategoryID *uint64 `json:"category_id" binding:"omitempty,gt=0"`
}

type Totals struct {
	Income     string `json:"income"`
	Expense    string `json:"expense"`
	Investment string `json:"investment"`
	Balance    string `json:"balance"`
}

type TransactionSummary struct {
	AllTime   Totals `json:"all_time"`
	ThisMonth Totals `json:"this_month"`
}
