package services

import (
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Studio service first, everything else authorizes through it
	container.Studio = NewStudioService(repos.StudioRepo, repos.UserRepo)
	authorizer := container.Studio.(portssvc.StudioAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Client = NewClientService(repos.ClientRepo, authorizer)
	container.Expense = NewExpenseService(repos.ExpenseRepo, authorizer)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.ClientRepo, repos.StudioRepo, authorizer)
	container.Proposal = NewProposalService(repos.ProposalRepo, repos.BudgetRepo, repos.StudioRepo, authorizer)
	container.Suggestion = NewSuggestionService(cfg, authorizer)

	container.Token = NewTokenService(cfg, container.User)
	container.OAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.StudioSvcFacade   = (*studioService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
	_ portssvc.ClientSvcFacade   = (*clientService)(nil)
	_ portssvc.ExpenseSvcFacade  = (*expenseService)(nil)
	_ portssvc.BudgetSvcFacade   = (*budgetService)(nil)
	_ portssvc.ProposalSvcFacade = (*proposalService)(nil)
	_ portssvc.SuggestionSvc     = (*suggestionService)(nil)
)
