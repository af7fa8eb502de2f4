package dto

type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Kind string `json:"kind" binding:"required,oneof=task transaction"`
}
