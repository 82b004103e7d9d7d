package entity

// BillFilter narrows and pages bill listings. Pointer fields are optional.
type BillFilter struct {
	Status    *BillStatus
	MinAmount *string
	MaxAmount *string
	Page      uint64
	Limit     uint64
	SortBy    BillSortCol
	OrderBy   OrderByCol
}

type BillSortCol string

const (
	SortByAmount    BillSortCol = "amount"
	SortByDueDate   BillSortCol = "due_date"
	SortByCreatedAt BillSortCol = "created_at"
)

func (c BillSortCol) String() string {
	return string(c)
}

func (c BillSortCol) IsValid() bool {
	switch c {
	case SortByAmount, SortByDueDate, SortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) String() string {
	return string(o)
}

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
