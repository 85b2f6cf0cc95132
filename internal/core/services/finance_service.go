package services

import (
	"classhub/internal/adapters/persistence/repositories"
	"classhub/internal/core/domain"
)

// duesCollectedPlaceholder stands in for a derived dues count. There is no
// per-member dues dataset yet, so the figure cannot be computed from the
// transaction log alone.
// TODO: derive from per-member dues records once transactions are linked
// to class members.
const duesCollectedPlaceholder = 34

// FinanceSummary holds the aggregate figures shown on the finance page
type FinanceSummary struct {
	TotalBalance  float64 `json:"totalBalance"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	DuesCollected int     `json:"duesCollected"`
}

// FinanceService derives summary figures from the transaction collection.
// Every call rescans the full collection; with at most a few hundred
// records there is nothing worth caching.
type FinanceService struct {
	transactionRepo *repositories.TransactionRepository
}

// NewFinanceService creates a new finance service
func NewFinanceService(transactionRepo *repositories.TransactionRepository) *FinanceService {
	return &FinanceService{transactionRepo: transactionRepo}
}

// Summarize partitions transactions by type and sums each side.
// Amounts are float64 sums; the portal tracks class petty cash, not a
// ledger with currency precision guarantees.
func (s *FinanceService) Summarize() FinanceSummary {
	var income, expenses float64

	for _, tx := range s.transactionRepo.List() {
		switch tx.Type {
		case domain.TransactionIncome:
			income += tx.Amount
		case domain.TransactionExpense:
			expenses += tx.Amount
		}
	}

	return FinanceSummary{
		TotalBalance:  income - expenses,
		TotalIncome:   income,
		TotalExpenses: expenses,
		DuesCollected: duesCollectedPlaceholder,
	}
}
