package pgsql

import (
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	studioRepo := newPgxStudioRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)
	proposalRepo := newPgxProposalRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:     userRepo,
		StudioRepo:   studioRepo,
		ClientRepo:   clientRepo,
		ExpenseRepo:  expenseRepo,
		BudgetRepo:   budgetRepo,
		ProposalRepo: proposalRepo,
	}
}
