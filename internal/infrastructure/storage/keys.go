package storage

// Well-known keys of the terminal's persisted namespace. Every subsystem
// partitions the store by one of these so writes never collide.
const (
	// KeyWorkingSale holds the versioned working-sale document.
	KeyWorkingSale = "pdv-storage"
	// KeyBudgets holds the budget collection.
	KeyBudgets = "pdv:budgets"
	// KeyPendingSales holds the pending-sale collection.
	KeyPendingSales = "pdv:pending-sales"

	// Reserved single-value slots kept for documents written by earlier
	// terminal versions.
	KeyTheme    = "pdv:theme"
	KeyLastSale = "pdv:last-sale"
	KeyCustomer = "pdv:customer"
	KeyDiscount = "pdv:discount"
)
