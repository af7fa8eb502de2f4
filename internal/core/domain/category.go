package domain

type CategoryKind string

const (
	CategoryKindTask        CategoryKind = "task"
	CategoryKindTransaction CategoryKind = "transaction"
)

func (k CategoryKind) Valid() bool {
	return k == CategoryKindTask || k == CategoryKindTransaction
}

type Category struct {
	ID   uint64
	Name string
	Kind CategoryKind
}

type CreateCategoryInput struct {
	UserID uint64
	Name   string
	Kind   CategoryKind
}
