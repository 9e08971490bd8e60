package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/mapping"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, studio_id, COALESCE(client_id, ''), name, description, budget_type, model, base_value, profit_margin_pct, additional_value, discount, discount_type, complexity_pct, delivery_urgency_pct, delivery_time_days, total, total_with_additions, average_price_per_m2, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.StudioID,
		&m.ClientID,
		&m.Name,
		&m.Description,
		&m.BudgetType,
		&m.Model,
		&m.BaseValue,
		&m.ProfitMarginPct,
		&m.AdditionalValue,
		&m.Discount,
		&m.DiscountType,
		&m.ComplexityPct,
		&m.DeliveryUrgencyPct,
		&m.DeliveryTimeDays,
		&m.Total,
		&m.TotalWithAdditions,
		&m.AveragePricePerM2,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBudget persists the budget header and its entire child tree within a
// single database transaction.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertBudgetHeader(ctx, tx, budget); err != nil {
		return err
	}
	if err := insertBudgetChildren(ctx, tx, budget); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateBudget replaces the budget header and child tree within a single
// database transaction. Children are deleted and reinserted; the service layer
// recomputes all totals before calling this.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBudget(budget)
	headerQuery := `
		UPDATE budgets
		SET client_id = NULLIF($1, ''), name = $2, description = $3, model = $4,
		    base_value = $5, profit_margin_pct = $6, additional_value = $7,
		    discount = $8, discount_type = $9, complexity_pct = $10,
		    delivery_urgency_pct = $11, delivery_time_days = $12,
		    total = $13, total_with_additions = $14, average_price_per_m2 = $15,
		    last_updated_at = $16, last_updated_by = $17
		WHERE budget_id = $18 AND is_active = TRUE;
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		m.ClientID,
		m.Name,
		m.Description,
		m.Model,
		m.BaseValue,
		m.ProfitMarginPct,
		m.AdditionalValue,
		m.Discount,
		m.DiscountType,
		m.ComplexityPct,
		m.DeliveryUrgencyPct,
		m.DeliveryTimeDays,
		m.Total,
		m.TotalWithAdditions,
		m.AveragePricePerM2,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BudgetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", m.BudgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget %s not found: %w", m.BudgetID, apperrors.ErrNotFound)
	}

	// Replace the tree wholesale. Phases cascade to segments and activities.
	for _, table := range []string{"budget_phases", "budget_items", "budget_additionals", "budget_references"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE budget_id = $1;`, m.BudgetID); err != nil {
			return fmt.Errorf("failed to clear %s for budget %s: %w", table, m.BudgetID, err)
		}
	}
	if err := insertBudgetChildren(ctx, tx, budget); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertBudgetHeader(ctx context.Context, tx pgx.Tx, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (
			budget_id, studio_id, client_id, name, description, budget_type, model,
			base_value, profit_margin_pct, additional_value, discount, discount_type,
			complexity_pct, delivery_urgency_pct, delivery_time_days,
			total, total_with_additions, average_price_per_m2, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := tx.Exec(ctx, query,
		m.BudgetID,
		m.StudioID,
		m.ClientID,
		m.Name,
		m.Description,
		m.BudgetType,
		m.Model,
		m.BaseValue,
		m.ProfitMarginPct,
		m.AdditionalValue,
		m.Discount,
		m.DiscountType,
		m.ComplexityPct,
		m.DeliveryUrgencyPct,
		m.DeliveryTimeDays,
		m.Total,
		m.TotalWithAdditions,
		m.AveragePricePerM2,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// insertBudgetChildren batch-inserts phases, segments, activities, items, the
// additional row and references for a budget inside the caller's transaction.
func insertBudgetChildren(ctx context.Context, tx pgx.Tx, budget domain.Budget) error {
	batch := &pgx.Batch{}

	phaseQuery := `
		INSERT INTO budget_phases (phase_id, budget_id, name, description, base_value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	segmentQuery := `
		INSERT INTO budget_segments (segment_id, phase_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	activityQuery := `
		INSERT INTO budget_activities (activity_id, phase_id, segment_id, name, description, hours, cost_per_hour, total_cost, complexity, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	itemQuery := `
		INSERT INTO budget_items (item_id, budget_id, name, description, price_per_m2, square_meters, development_time, images_quantity, complexity_level, total, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	queueActivity := func(a domain.BudgetActivity) {
		m := mapping.ToModelBudgetActivity(a)
		batch.Queue(activityQuery,
			m.ActivityID, m.PhaseID, m.SegmentID, m.Name, m.Description,
			m.Hours, m.CostPerHour, m.TotalCost, m.Complexity,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	for _, phase := range budget.Phases {
		mp := mapping.ToModelBudgetPhase(phase)
		batch.Queue(phaseQuery,
			mp.PhaseID, mp.BudgetID, mp.Name, mp.Description, mp.BaseValue,
			mp.CreatedAt, mp.CreatedBy, mp.LastUpdatedAt, mp.LastUpdatedBy,
		)
		for _, segment := range phase.Segments {
			ms := mapping.ToModelBudgetSegment(segment)
			batch.Queue(segmentQuery,
				ms.SegmentID, ms.PhaseID, ms.Name, ms.Description,
				ms.CreatedAt, ms.CreatedBy, ms.LastUpdatedAt, ms.LastUpdatedBy,
			)
			for _, activity := range segment.Activities {
				queueActivity(activity)
			}
		}
		for _, activity := range phase.Activities {
			queueActivity(activity)
		}
	}

	for _, item := range budget.Items {
		mi := mapping.ToModelBudgetItem(item)
		batch.Queue(itemQuery,
			mi.ItemID, mi.BudgetID, mi.Name, mi.Description,
			mi.PricePerM2, mi.SquareMeters, mi.DevelopmentTime, mi.ImagesQuantity, mi.Complexity, mi.Total,
			mi.CreatedAt, mi.CreatedBy, mi.LastUpdatedAt, mi.LastUpdatedBy,
		)
	}

	if budget.Additional != nil {
		ma := mapping.ToModelBudgetAdditional(*budget.Additional)
		batch.Queue(`
			INSERT INTO budget_additionals (additional_id, budget_id, wet_area_quantity, dry_area_quantity, wet_area_percentage, delivery_time, disable_delivery_charge, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`,
			ma.AdditionalID, ma.BudgetID, ma.WetAreaQuantity, ma.DryAreaQuantity,
			ma.WetAreaPercentage, ma.DeliveryTimeDays, ma.DisableDeliveryCharge,
			ma.CreatedAt, ma.CreatedBy, ma.LastUpdatedAt, ma.LastUpdatedBy,
		)
	}

	for _, reference := range budget.References {
		mr := mapping.ToModelBudgetReference(reference)
		batch.Queue(`
			INSERT INTO budget_references (reference_id, budget_id, project_name, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`,
			mr.ReferenceID, mr.BudgetID, mr.ProjectName,
			mr.CreatedAt, mr.CreatedBy, mr.LastUpdatedAt, mr.LastUpdatedBy,
		)
	}

	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute child batch for budget %s: %w", budget.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget with its full child tree attached.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 AND is_active = TRUE;`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	budget := mapping.ToDomainBudget(m)
	if err := r.attachChildren(ctx, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *PgxBudgetRepository) attachChildren(ctx context.Context, budget *domain.Budget) error {
	phases, err := r.loadPhases(ctx, budget.BudgetID)
	if err != nil {
		return err
	}
	budget.Phases = phases

	items, err := r.loadItems(ctx, budget.BudgetID)
	if err != nil {
		return err
	}
	budget.Items = items

	additional, err := r.loadAdditional(ctx, budget.BudgetID)
	if err != nil {
		return err
	}
	budget.Additional = additional

	references, err := r.loadReferences(ctx, budget.BudgetID)
	if err != nil {
		return err
	}
	budget.References = references

	return nil
}

func (r *PgxBudgetRepository) loadPhases(ctx context.Context, budgetID string) ([]domain.BudgetPhase, error) {
	phaseRows, err := r.Pool.Query(ctx, `
		SELECT phase_id, budget_id, name, description, base_value, created_at, created_by, last_updated_at, last_updated_by
		FROM budget_phases
		WHERE budget_id = $1
		ORDER BY created_at, phase_id;
	`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query phases for budget %s: %w", budgetID, err)
	}
	defer phaseRows.Close()

	var phases []domain.BudgetPhase
	phaseIndex := map[string]int{}
	for phaseRows.Next() {
		var m models.BudgetPhase
		if err := phaseRows.Scan(&m.PhaseID, &m.BudgetID, &m.Name, &m.Description, &m.BaseValue,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan phase row: %w", err)
		}
		phaseIndex[m.PhaseID] = len(phases)
		phases = append(phases, mapping.ToDomainBudgetPhase(m))
	}
	if phaseRows.Err() != nil {
		return nil, fmt.Errorf("error iterating phase rows: %w", phaseRows.Err())
	}
	if len(phases) == 0 {
		return nil, nil
	}

	segmentRows, err := r.Pool.Query(ctx, `
		SELECT s.segment_id, s.phase_id, s.name, s.description, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM budget_segments s
		JOIN budget_phases p ON p.phase_id = s.phase_id
		WHERE p.budget_id = $1
		ORDER BY s.created_at, s.segment_id;
	`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query segments for budget %s: %w", budgetID, err)
	}
	defer segmentRows.Close()

	segmentIndex := map[string]struct{ phase, segment int }{}
	for segmentRows.Next() {
		var m models.BudgetSegment
		if err := segmentRows.Scan(&m.SegmentID, &m.PhaseID, &m.Name, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan segment row: %w", err)
		}
		pi, ok := phaseIndex[m.PhaseID]
		if !ok {
			continue
		}
		segmentIndex[m.SegmentID] = struct{ phase, segment int }{pi, len(phases[pi].Segments)}
		phases[pi].Segments = append(phases[pi].Segments, mapping.ToDomainBudgetSegment(m))
	}
	if segmentRows.Err() != nil {
		return nil, fmt.Errorf("error iterating segment rows: %w", segmentRows.Err())
	}

	activityRows, err := r.Pool.Query(ctx, `
		SELECT a.activity_id, a.phase_id, COALESCE(a.segment_id, ''), a.name, a.description, a.hours, a.cost_per_hour, a.total_cost, a.complexity, a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
		FROM budget_activities a
		JOIN budget_phases p ON p.phase_id = a.phase_id
		WHERE p.budget_id = $1
		ORDER BY a.created_at, a.activity_id;
	`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities for budget %s: %w", budgetID, err)
	}
	defer activityRows.Close()

	for activityRows.Next() {
		var m models.BudgetActivity
		if err := activityRows.Scan(&m.ActivityID, &m.PhaseID, &m.SegmentID, &m.Name, &m.Description,
			&m.Hours, &m.CostPerHour, &m.TotalCost, &m.Complexity,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activity := mapping.ToDomainBudgetActivity(m)
		if m.SegmentID != "" {
			if loc, ok := segmentIndex[m.SegmentID]; ok {
				seg := &phases[loc.phase].Segments[loc.segment]
				seg.Activities = append(seg.Activities, activity)
			}
			continue
		}
		if pi, ok := phaseIndex[m.PhaseID]; ok {
			phases[pi].Activities = append(phases[pi].Activities, activity)
		}
	}
	if activityRows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", activityRows.Err())
	}

	return phases, nil
}

func (r *PgxBudgetRepository) loadItems(ctx context.Context, budgetID string) ([]domain.BudgetItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT item_id, budget_id, name, description, price_per_m2, square_meters, development_time, images_quantity, complexity_level, total, created_at, created_by, last_updated_at, last_updated_by
		FROM budget_items
		WHERE budget_id = $1
		ORDER BY created_at, item_id;
	`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for budget %s: %w", budgetID, err)
	}
	defer rows.Close()

	var items []domain.BudgetItem
	for rows.Next() {
		var m models.BudgetItem
		if err := rows.Scan(&m.ItemID, &m.BudgetID, &m.Name, &m.Description,
			&m.PricePerM2, &m.SquareMeters, &m.DevelopmentTime, &m.ImagesQuantity, &m.Complexity, &m.Total,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, mapping.ToDomainBudgetItem(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", rows.Err())
	}

	return items, nil
}

func (r *PgxBudgetRepository) loadAdditional(ctx context.Context, budgetID string) (*domain.BudgetAdditional, error) {
	var m models.BudgetAdditional
	err := r.Pool.QueryRow(ctx, `
		SELECT additional_id, budget_id, wet_area_quantity, dry_area_quantity, wet_area_percentage, delivery_time, disable_delivery_charge, created_at, created_by, last_updated_at, last_updated_by
		FROM budget_additionals
		WHERE budget_id = $1;
	`, budgetID).Scan(
		&m.AdditionalID, &m.BudgetID, &m.WetAreaQuantity, &m.DryAreaQuantity,
		&m.WetAreaPercentage, &m.DeliveryTimeDays, &m.DisableDeliveryCharge,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query additional for budget %s: %w", budgetID, err)
	}

	additional := mapping.ToDomainBudgetAdditional(m)
	return &additional, nil
}

func (r *PgxBudgetRepository) loadReferences(ctx context.Context, budgetID string) ([]domain.BudgetReference, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT reference_id, budget_id, project_name, created_at, created_by, last_updated_at, last_updated_by
		FROM budget_references
		WHERE budget_id = $1
		ORDER BY created_at, reference_id;
	`, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query references for budget %s: %w", budgetID, err)
	}
	defer rows.Close()

	var references []domain.BudgetReference
	for rows.Next() {
		var m models.BudgetReference
		if err := rows.Scan(&m.ReferenceID, &m.BudgetID, &m.ProjectName,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan reference row: %w", err)
		}
		references = append(references, mapping.ToDomainBudgetReference(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reference rows: %w", rows.Err())
	}

	return references, nil
}

// ListBudgets retrieves a paginated list of a studio's budgets (headers only)
// using token-based pagination on (created_at DESC, budget_id DESC).
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, studioID string, limit int, nextToken *string) ([]domain.Budget, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE studio_id = $1 AND is_active = TRUE
	`
	orderByClause := `ORDER BY created_at DESC, budget_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{studioID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastBudgetID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}

		cursorClause := `AND (created_at, budget_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastBudgetID)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to query budgets for studio %s: %w", studioID, err)
	}
	defer rows.Close()

	modelBudgets := make([]models.Budget, 0, fetchLimit)
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		modelBudgets = append(modelBudgets, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}

	var nextTokenVal *string
	results := modelBudgets
	if len(modelBudgets) > limit {
		last := modelBudgets[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.BudgetID)
		nextTokenVal = &token
		results = modelBudgets[:limit]
	}

	budgets := make([]domain.Budget, len(results))
	for i, m := range results {
		budgets[i] = mapping.ToDomainBudget(m)
	}
	return budgets, nextTokenVal, nil
}

func (r *PgxBudgetRepository) DeactivateBudget(ctx context.Context, budgetID string, userID string, now time.Time) error {
	query := `
		UPDATE budgets
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE budget_id = $3 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, now, userID, budgetID)
	if err != nil {
		return fmt.Errorf("failed to deactivate budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget %s not found: %w", budgetID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBudgetRepository) UpsertAdditional(ctx context.Context, additional domain.BudgetAdditional) error {
	m := mapping.ToModelBudgetAdditional(additional)
	query := `
		INSERT INTO budget_additionals (additional_id, budget_id, wet_area_quantity, dry_area_quantity, wet_area_percentage, delivery_time, disable_delivery_charge, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (budget_id) DO UPDATE SET
			wet_area_quantity = EXCLUDED.wet_area_quantity,
			dry_area_quantity = EXCLUDED.dry_area_quantity,
			wet_area_percentage = EXCLUDED.wet_area_percentage,
			delivery_time = EXCLUDED.delivery_time,
			disable_delivery_charge = EXCLUDED.disable_delivery_charge,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AdditionalID, m.BudgetID, m.WetAreaQuantity, m.DryAreaQuantity,
		m.WetAreaPercentage, m.DeliveryTimeDays, m.DisableDeliveryCharge,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert additional for budget %s: %w", m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) SaveReference(ctx context.Context, reference domain.BudgetReference) error {
	m := mapping.ToModelBudgetReference(reference)
	query := `
		INSERT INTO budget_references (reference_id, budget_id, project_name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReferenceID, m.BudgetID, m.ProjectName,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save reference for budget %s: %w", m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteReference(ctx context.Context, referenceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM budget_references WHERE reference_id = $1;`, referenceID)
	if err != nil {
		return fmt.Errorf("failed to delete reference %s: %w", referenceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("reference %s not found: %w", referenceID, apperrors.ErrNotFound)
	}
	return nil
}
