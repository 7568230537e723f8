package enum

// SaleKind distinguishes the two saved-sale collections. Budgets and
// pending sales share one shape but live under separate storage keys so
// that documents written by earlier versions keep loading.
type SaleKind string

const (
	SaleKindBudget  SaleKind = "budget"
	SaleKindPending SaleKind = "pending"
)

func (k SaleKind) String() string {
	return string(k)
}

// IDPrefix returns the prefix used when generating record identifiers.
func (k SaleKind) IDPrefix() string {
	if k == SaleKindPending {
		return "pending"
	}
	return "budget"
}
