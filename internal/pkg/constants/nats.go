package constants

// NATS Subjects
const (
	// Transaction lifecycle
	SubjectTransactionInitiated = "spendly.transaction.initiated"
	SubjectTransactionFinalized = "spendly.transaction.finalized"

	// Budget
	SubjectBalancesRecalculated = "spendly.budget.recalculated"
)
