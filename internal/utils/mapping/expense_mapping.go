package mapping

import (
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:       d.ExpenseID,
		StudioID:        d.StudioID,
		CategoryID:      d.CategoryID,
		Name:            d.Name,
		Description:     d.Description,
		Value:           d.Value,
		Frequency:       string(d.Frequency),
		CompensationDay: d.CompensationDay,
		IsFixed:         d.IsFixed,
		IsActive:        d.IsActive,
		IsArchived:      d.IsArchived,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:       m.ExpenseID,
		StudioID:        m.StudioID,
		CategoryID:      m.CategoryID,
		Name:            m.Name,
		Description:     m.Description,
		Value:           m.Value,
		Frequency:       domain.ExpenseFrequency(m.Frequency),
		CompensationDay: m.CompensationDay,
		IsFixed:         m.IsFixed,
		IsActive:        m.IsActive,
		IsArchived:      m.IsArchived,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExpenseCategory converts a domain ExpenseCategory to its model form.
func ToModelExpenseCategory(d domain.ExpenseCategory) models.ExpenseCategory {
	return models.ExpenseCategory{
		CategoryID:  d.CategoryID,
		StudioID:    d.StudioID,
		Name:        d.Name,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseCategory converts a model ExpenseCategory to its domain form.
func ToDomainExpenseCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	return domain.ExpenseCategory{
		CategoryID:  m.CategoryID,
		StudioID:    m.StudioID,
		Name:        m.Name,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
