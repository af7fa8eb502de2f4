package dto

type BudgetItem struct {
	ID        uint64   `json:"id"`
	Category  Category `json:"category"`
	Month     string   `json:"month"`
	Amount    string   `json:"amount"`
	CreatedAt string   `json:"created_at"`
}

type BudgetUsageItem struct {
	BudgetItem
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
	Exceeded  bool   `json:"exceeded"`
}

type CreateBudgetRequest struct {
	CategoryID uint64 `json:"category_id" binding:"required,gt=0"`
	Month      string `json:"month" binding:"required,len=7"`
	Amount     Amount `json:"amount" binding:"required"`
}
