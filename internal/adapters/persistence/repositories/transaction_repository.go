package repositories

import (
	"sort"

	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

// TransactionRepository handles transaction data access
type TransactionRepository struct {
	transactions *store.Collection[domain.Transaction]
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(s *store.Store) *TransactionRepository {
	return &TransactionRepository{transactions: s.Transactions}
}

// List lists all transactions, newest first; ties go to the higher ID
func (r *TransactionRepository) List() []domain.Transaction {
	items := r.transactions.List()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].ID > items[j].ID
	})
	return items
}

// GetByID gets a transaction by ID
func (r *TransactionRepository) GetByID(id int) (domain.Transaction, error) {
	tx, ok := r.transactions.Get(id)
	if !ok {
		return domain.Transaction{}, domain.ErrNotFound
	}
	return tx, nil
}

// Create creates a new transaction and assigns its ID
func (r *TransactionRepository) Create(tx domain.Transaction) domain.Transaction {
	return r.transactions.Insert(func(id int) domain.Transaction {
		tx.ID = id
		return tx
	})
}

// Update applies the non-nil fields of patch over the existing record
func (r *TransactionRepository) Update(id int, patch domain.TransactionPatch) (domain.Transaction, error) {
	updated, ok := r.transactions.Update(id, func(tx domain.Transaction) domain.Transaction {
		if patch.Date != nil {
			tx.Date = *patch.Date
		}
		if patch.Description != nil {
			tx.Description = *patch.Description
		}
		if patch.Category != nil {
			tx.Category = *patch.Category
		}
		if patch.Amount != nil {
			tx.Amount = *patch.Amount
		}
		if patch.Type != nil {
			tx.Type = *patch.Type
		}
		if patch.Status != nil {
			tx.Status = *patch.Status
		}
		return tx
	})
	if !ok {
		return domain.Transaction{}, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id int) error {
	if !r.transactions.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}
