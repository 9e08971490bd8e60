package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/pagination"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	clientRepo portsrepo.ClientReader
	studioRepo portsrepo.StudioReader
}

// NewBudgetService creates a new budget service with the provided dependencies
func NewBudgetService(
	budgetRepo portsrepo.BudgetRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	studioRepo portsrepo.StudioReader,
	authorizer portssvc.StudioAuthorizerSvc,
) portssvc.BudgetSvcFacade {
	return &budgetService{
		BaseService: BaseService{StudioAuthorizer: authorizer},
		budgetRepo:  budgetRepo,
		clientRepo:  clientRepo,
		studioRepo:  studioRepo,
	}
}

// Ensure budgetService implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// GetBudgetByID retrieves a budget with its full line-item tree
func (s *budgetService) GetBudgetByID(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Budget, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.StudioID != studioID {
		return nil, apperrors.ErrNotFound
	}
	return budget, nil
}

// ListBudgets retrieves a page of the studio's budgets with token pagination
func (s *budgetService) ListBudgets(ctx context.Context, studioID string, requestingUserID string, limit int, nextToken string) ([]domain.Budget, string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, "", err
	}

	var tokenPtr *string
	if nextToken != "" {
		if _, _, err := pagination.DecodeToken(nextToken); err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		tokenPtr = &nextToken
	}

	budgets, next, err := s.budgetRepo.ListBudgets(ctx, studioID, limit, tokenPtr)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets", slog.String("studio_id", studioID))
		return nil, "", err
	}

	nextOut := ""
	if next != nil {
		nextOut = *next
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return budgets, nextOut, nil
}

// CreateBudget validates the line-item shape against the budget type,
// recomputes all totals server-side and persists the tree in one transaction.
func (s *budgetService) CreateBudget(ctx context.Context, studioID string, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	if err := validateShape(req.Type, len(req.Phases) > 0, len(req.Items) > 0); err != nil {
		return nil, err
	}
	if err := validateAdjustments(req.AdditionalValue, req.Discount); err != nil {
		return nil, err
	}
	complexityPct, err := pricing.SurchargePct(req.Complexity)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	urgencyPct, err := pricing.SurchargePct(req.DeliveryUrgency)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if req.ClientID != "" {
		client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
		if err != nil || client.StudioID != studioID {
			return nil, fmt.Errorf("%w: client %s not found", apperrors.ErrValidation, req.ClientID)
		}
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	budget := domain.Budget{
		BudgetID:           uuid.NewString(),
		StudioID:           studioID,
		ClientID:           req.ClientID,
		Name:               req.Name,
		Description:        req.Description,
		Type:               req.Type,
		Model:              req.Model,
		BaseValue:          req.BaseValue,
		ProfitMarginPct:    req.ProfitMarginPct,
		AdditionalValue:    req.AdditionalValue,
		Discount:           req.Discount,
		DiscountType:       req.DiscountType,
		ComplexityPct:      complexityPct,
		DeliveryUrgencyPct: urgencyPct,
		DeliveryTimeDays:   req.DeliveryTimeDays,
		IsActive:           true,
		AuditFields:        audit,
	}

	budget.Phases = buildPhases(budget.BudgetID, req.Phases, audit)
	budget.Items = buildItems(budget.BudgetID, req.Items, audit)
	if req.Additional != nil {
		budget.Additional = &domain.BudgetAdditional{
			AdditionalID:          uuid.NewString(),
			BudgetID:              budget.BudgetID,
			WetAreaQuantity:       req.Additional.WetAreaQuantity,
			DryAreaQuantity:       req.Additional.DryAreaQuantity,
			WetAreaPercentage:     req.Additional.WetAreaPercentage,
			DeliveryTimeDays:      req.Additional.DeliveryTimeDays,
			DisableDeliveryCharge: req.Additional.DisableDeliveryCharge,
			AuditFields:           audit,
		}
	}
	for _, name := range req.References {
		budget.References = append(budget.References, domain.BudgetReference{
			ReferenceID: uuid.NewString(),
			BudgetID:    budget.BudgetID,
			ProjectName: name,
			AuditFields: audit,
		})
	}

	if err := s.recomputeTotals(ctx, &budget); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("studio_id", studioID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created successfully",
		slog.String("budget_id", budget.BudgetID),
		slog.String("studio_id", studioID),
		slog.String("type", string(budget.Type)))
	return &budget, nil
}

// UpdateBudget applies header and pricing changes, replaces the tree when one
// is sent, recomputes totals and persists in one transaction. The budget type
// is immutable after creation.
func (s *budgetService) UpdateBudget(ctx context.Context, studioID string, budgetID string, req dto.UpdateBudgetRequest, requestingUserID string) (*domain.Budget, error) {
	budget, err := s.GetBudgetByID(ctx, studioID, budgetID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Name != nil {
		budget.Name = *req.Name
	}
	if req.Description != nil {
		budget.Description = *req.Description
	}
	if req.ClientID != nil {
		if *req.ClientID != "" {
			client, err := s.clientRepo.FindClientByID(ctx, *req.ClientID)
			if err != nil || client.StudioID != studioID {
				return nil, fmt.Errorf("%w: client %s not found", apperrors.ErrValidation, *req.ClientID)
			}
		}
		budget.ClientID = *req.ClientID
	}
	if req.Model != nil {
		budget.Model = *req.Model
	}
	if req.BaseValue != nil {
		budget.BaseValue = *req.BaseValue
	}
	if req.ProfitMarginPct != nil {
		budget.ProfitMarginPct = *req.ProfitMarginPct
	}
	if req.AdditionalValue != nil {
		budget.AdditionalValue = *req.AdditionalValue
	}
	if req.Discount != nil {
		budget.Discount = *req.Discount
	}
	if req.DiscountType != nil {
		budget.DiscountType = *req.DiscountType
	}
	if req.Complexity != nil {
		pct, err := pricing.SurchargePct(*req.Complexity)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		budget.ComplexityPct = pct
	}
	if req.DeliveryUrgency != nil {
		pct, err := pricing.SurchargePct(*req.DeliveryUrgency)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		budget.DeliveryUrgencyPct = pct
	}
	if req.DeliveryTimeDays != nil {
		budget.DeliveryTimeDays = *req.DeliveryTimeDays
	}
	if err := validateAdjustments(budget.AdditionalValue, budget.Discount); err != nil {
		return nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     requestingUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: requestingUserID,
	}

	if req.Phases != nil || req.Items != nil {
		if err := validateShape(budget.Type, len(req.Phases) > 0, len(req.Items) > 0); err != nil {
			return nil, err
		}
		budget.Phases = buildPhases(budget.BudgetID, req.Phases, audit)
		budget.Items = buildItems(budget.BudgetID, req.Items, audit)
	}
	if req.Additional != nil {
		additionalID := uuid.NewString()
		if budget.Additional != nil {
			additionalID = budget.Additional.AdditionalID
		}
		budget.Additional = &domain.BudgetAdditional{
			AdditionalID:          additionalID,
			BudgetID:              budget.BudgetID,
			WetAreaQuantity:       req.Additional.WetAreaQuantity,
			DryAreaQuantity:       req.Additional.DryAreaQuantity,
			WetAreaPercentage:     req.Additional.WetAreaPercentage,
			DeliveryTimeDays:      req.Additional.DeliveryTimeDays,
			DisableDeliveryCharge: req.Additional.DisableDeliveryCharge,
			AuditFields:           audit,
		}
	}

	budget.LastUpdatedAt = now
	budget.LastUpdatedBy = requestingUserID

	if err := s.recomputeTotals(ctx, budget); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}
	return budget, nil
}

// DeleteBudget marks a budget as inactive
func (s *budgetService) DeleteBudget(ctx context.Context, studioID string, budgetID string, requestingUserID string) error {
	if _, err := s.GetBudgetByID(ctx, studioID, budgetID, requestingUserID); err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.budgetRepo.DeactivateBudget(ctx, budgetID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate budget", slog.String("budget_id", budgetID))
		return err
	}

	s.LogInfo(ctx, "Budget deactivated", slog.String("budget_id", budgetID))
	return nil
}

// AddReference attaches a past-project reference to a budget
func (s *budgetService) AddReference(ctx context.Context, studioID string, budgetID string, projectName string, requestingUserID string) (*domain.BudgetReference, error) {
	if _, err := s.GetBudgetByID(ctx, studioID, budgetID, requestingUserID); err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	reference := domain.BudgetReference{
		ReferenceID: uuid.NewString(),
		BudgetID:    budgetID,
		ProjectName: projectName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.budgetRepo.SaveReference(ctx, reference); err != nil {
		s.LogError(ctx, err, "Failed to save budget reference", slog.String("budget_id", budgetID))
		return nil, err
	}
	return &reference, nil
}

// RemoveReference detaches a past-project reference from a budget
func (s *budgetService) RemoveReference(ctx context.Context, studioID string, budgetID string, referenceID string, requestingUserID string) error {
	budget, err := s.GetBudgetByID(ctx, studioID, budgetID, requestingUserID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return err
	}

	found := false
	for _, ref := range budget.References {
		if ref.ReferenceID == referenceID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrNotFound
	}

	if err := s.budgetRepo.DeleteReference(ctx, referenceID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget reference", slog.String("reference_id", referenceID))
		return err
	}
	return nil
}

// validateShape rejects budgets mixing the phase tree with flat items, and
// budgets whose line items do not match their type.
func validateShape(budgetType domain.BudgetType, hasPhases, hasItems bool) error {
	if hasPhases && hasItems {
		return fmt.Errorf("%w: a budget cannot carry both phases and flat items", apperrors.ErrValidation)
	}
	switch budgetType {
	case domain.BudgetTypeComplete:
		if hasItems {
			return fmt.Errorf("%w: COMPLETE budgets carry phases, not flat items", apperrors.ErrValidation)
		}
	case domain.BudgetTypeSquareMeter, domain.BudgetTypeRender:
		if hasPhases {
			return fmt.Errorf("%w: %s budgets carry flat items, not phases", apperrors.ErrValidation, budgetType)
		}
	default:
		return fmt.Errorf("%w: unknown budget type %q", apperrors.ErrValidation, budgetType)
	}
	return nil
}

// validateAdjustments rejects budgets carrying both a flat increase and a
// discount; the two are mutually exclusive pricing levers.
func validateAdjustments(additionalValue, discount decimal.Decimal) error {
	if additionalValue.IsPositive() && discount.IsPositive() {
		return fmt.Errorf("%w: additional value and discount are mutually exclusive", apperrors.ErrValidation)
	}
	return nil
}

// buildPhases materializes the request tree, assigning IDs and recomputing
// every activity cost. An activity without its own rate inherits the phase rate.
func buildPhases(budgetID string, reqs []dto.CreateBudgetPhaseRequest, audit domain.AuditFields) []domain.BudgetPhase {
	if len(reqs) == 0 {
		return nil
	}
	phases := make([]domain.BudgetPhase, 0, len(reqs))
	for _, pr := range reqs {
		phase := domain.BudgetPhase{
			PhaseID:     uuid.NewString(),
			BudgetID:    budgetID,
			Name:        pr.Name,
			Description: pr.Description,
			BaseValue:   pr.BaseValue,
			AuditFields: audit,
		}
		for _, ar := range pr.Activities {
			phase.Activities = append(phase.Activities, buildActivity(phase.PhaseID, "", ar, pr.BaseValue, audit))
		}
		for _, sr := range pr.Segments {
			segment := domain.BudgetSegment{
				SegmentID:   uuid.NewString(),
				PhaseID:     phase.PhaseID,
				Name:        sr.Name,
				Description: sr.Description,
				AuditFields: audit,
			}
			for _, ar := range sr.Activities {
				segment.Activities = append(segment.Activities, buildActivity(phase.PhaseID, segment.SegmentID, ar, pr.BaseValue, audit))
			}
			phase.Segments = append(phase.Segments, segment)
		}
		phases = append(phases, phase)
	}
	return phases
}

func buildActivity(phaseID, segmentID string, req dto.CreateBudgetActivityRequest, phaseRate decimal.Decimal, audit domain.AuditFields) domain.BudgetActivity {
	rate := req.CostPerHour
	if rate.IsZero() {
		rate = phaseRate
	}
	return domain.BudgetActivity{
		ActivityID:  uuid.NewString(),
		PhaseID:     phaseID,
		SegmentID:   segmentID,
		Name:        req.Name,
		Description: req.Description,
		Hours:       req.Hours,
		CostPerHour: rate,
		TotalCost:   pricing.ActivityCost(req.Hours, rate),
		Complexity:  req.Complexity,
		AuditFields: audit,
	}
}

func buildItems(budgetID string, reqs []dto.CreateBudgetItemRequest, audit domain.AuditFields) []domain.BudgetItem {
	if len(reqs) == 0 {
		return nil
	}
	items := make([]domain.BudgetItem, 0, len(reqs))
	for _, ir := range reqs {
		items = append(items, domain.BudgetItem{
			ItemID:          uuid.NewString(),
			BudgetID:        budgetID,
			Name:            ir.Name,
			Description:     ir.Description,
			PricePerM2:      ir.PricePerM2,
			SquareMeters:    ir.SquareMeters,
			DevelopmentTime: ir.DevelopmentTime,
			ImagesQuantity:  ir.ImagesQuantity,
			Complexity:      ir.Complexity,
			AuditFields:     audit,
		})
	}
	return items
}

// recomputeTotals derives every stored total from the line items and pricing
// inputs. Client-sent totals are never trusted.
func (s *budgetService) recomputeTotals(ctx context.Context, budget *domain.Budget) error {
	rate, err := s.effectiveHourlyRate(ctx, budget)
	if err != nil {
		return err
	}

	var base decimal.Decimal
	switch budget.Type {
	case domain.BudgetTypeComplete:
		base = pricing.PhasesBaseTotal(budget.Phases)
		base = pricing.ApplyProfitMargin(base, budget.ProfitMarginPct)
	case domain.BudgetTypeSquareMeter, domain.BudgetTypeRender:
		base, err = pricing.ItemsBaseTotal(budget.Type, budget.Items, rate)
		if err != nil {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		// Persist the recomputed line totals alongside the rollup
		for i := range budget.Items {
			switch budget.Type {
			case domain.BudgetTypeSquareMeter:
				budget.Items[i].Total = pricing.SquareMeterItemTotal(budget.Items[i].SquareMeters, budget.Items[i].PricePerM2)
			case domain.BudgetTypeRender:
				lineTotal, err := pricing.RenderItemTotal(budget.Items[i].DevelopmentTime, rate, budget.Items[i].Complexity, budget.Items[i].ImagesQuantity)
				if err != nil {
					return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
				}
				budget.Items[i].Total = lineTotal
			}
		}
	default:
		return fmt.Errorf("%w: unknown budget type %q", apperrors.ErrValidation, budget.Type)
	}

	adjustment := pricing.Adjustment{
		AdditionalValue: budget.AdditionalValue,
		Discount:        budget.Discount,
		DiscountType:    budget.DiscountType,
	}
	total, err := adjustment.Apply(base)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	budget.Total = total

	additions := pricing.Additions{
		ComplexityPct:      budget.ComplexityPct,
		DeliveryUrgencyPct: budget.DeliveryUrgencyPct,
	}
	if budget.Additional != nil {
		additions.WetAreaSurcharge = pricing.WetAreaSurcharge(rate, budget.Additional.WetAreaQuantity, budget.Additional.WetAreaPercentage)
		additions.DisableDelivery = budget.Additional.DisableDeliveryCharge
	}
	budget.TotalWithAdditions = pricing.TotalWithAdditions(total, additions)
	budget.AveragePricePerM2 = pricing.AveragePricePerM2(total, budget.Items)

	return nil
}

// effectiveHourlyRate resolves the rate used for render items and wet-area
// surcharges: budget override, then studio default, then the application default.
func (s *budgetService) effectiveHourlyRate(ctx context.Context, budget *domain.Budget) (decimal.Decimal, error) {
	if budget.BaseValue.IsPositive() {
		return budget.BaseValue, nil
	}
	studio, err := s.studioRepo.FindStudioByID(ctx, budget.StudioID)
	if err != nil {
		return decimal.Zero, err
	}
	if studio.BaseHourlyRate.IsPositive() {
		return studio.BaseHourlyRate, nil
	}
	return pricing.DefaultHourlyRate, nil
}
