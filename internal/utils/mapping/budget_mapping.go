package mapping

import (
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
)

// ToModelBudget converts a domain Budget (header only, not its children) to a
// model Budget.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:           d.BudgetID,
		StudioID:           d.StudioID,
		ClientID:           d.ClientID,
		Name:               d.Name,
		Description:        d.Description,
		BudgetType:         string(d.Type),
		Model:              string(d.Model),
		BaseValue:          d.BaseValue,
		ProfitMarginPct:    d.ProfitMarginPct,
		AdditionalValue:    d.AdditionalValue,
		Discount:           d.Discount,
		DiscountType:       string(d.DiscountType),
		ComplexityPct:      d.ComplexityPct,
		DeliveryUrgencyPct: d.DeliveryUrgencyPct,
		DeliveryTimeDays:   d.DeliveryTimeDays,
		Total:              d.Total,
		TotalWithAdditions: d.TotalWithAdditions,
		AveragePricePerM2:  d.AveragePricePerM2,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget header. Children
// (phases/items/additional/references) are loaded and attached separately.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:           m.BudgetID,
		StudioID:           m.StudioID,
		ClientID:           m.ClientID,
		Name:               m.Name,
		Description:        m.Description,
		Type:               domain.BudgetType(m.BudgetType),
		Model:              domain.BudgetModel(m.Model),
		BaseValue:          m.BaseValue,
		ProfitMarginPct:    m.ProfitMarginPct,
		AdditionalValue:    m.AdditionalValue,
		Discount:           m.Discount,
		DiscountType:       domain.DiscountType(m.DiscountType),
		ComplexityPct:      m.ComplexityPct,
		DeliveryUrgencyPct: m.DeliveryUrgencyPct,
		DeliveryTimeDays:   m.DeliveryTimeDays,
		Total:              m.Total,
		TotalWithAdditions: m.TotalWithAdditions,
		AveragePricePerM2:  m.AveragePricePerM2,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudgetPhase converts a domain BudgetPhase (header only) to its model form.
func ToModelBudgetPhase(d domain.BudgetPhase) models.BudgetPhase {
	return models.BudgetPhase{
		PhaseID:     d.PhaseID,
		BudgetID:    d.BudgetID,
		Name:        d.Name,
		Description: d.Description,
		BaseValue:   d.BaseValue,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetPhase converts a model BudgetPhase to its domain form.
func ToDomainBudgetPhase(m models.BudgetPhase) domain.BudgetPhase {
	return domain.BudgetPhase{
		PhaseID:     m.PhaseID,
		BudgetID:    m.BudgetID,
		Name:        m.Name,
		Description: m.Description,
		BaseValue:   m.BaseValue,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudgetSegment converts a domain BudgetSegment (header only) to its model form.
func ToModelBudgetSegment(d domain.BudgetSegment) models.BudgetSegment {
	return models.BudgetSegment{
		SegmentID:   d.SegmentID,
		PhaseID:     d.PhaseID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetSegment converts a model BudgetSegment to its domain form.
func ToDomainBudgetSegment(m models.BudgetSegment) domain.BudgetSegment {
	return domain.BudgetSegment{
		SegmentID:   m.SegmentID,
		PhaseID:     m.PhaseID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudgetActivity converts a domain BudgetActivity to its model form.
func ToModelBudgetActivity(d domain.BudgetActivity) models.BudgetActivity {
	return models.BudgetActivity{
		ActivityID:  d.ActivityID,
		PhaseID:     d.PhaseID,
		SegmentID:   d.SegmentID,
		Name:        d.Name,
		Description: d.Description,
		Hours:       d.Hours,
		CostPerHour: d.CostPerHour,
		TotalCost:   d.TotalCost,
		Complexity:  d.Complexity,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetActivity converts a model BudgetActivity to its domain form.
func ToDomainBudgetActivity(m models.BudgetActivity) domain.BudgetActivity {
	return domain.BudgetActivity{
		ActivityID:  m.ActivityID,
		PhaseID:     m.PhaseID,
		SegmentID:   m.SegmentID,
		Name:        m.Name,
		Description: m.Description,
		Hours:       m.Hours,
		CostPerHour: m.CostPerHour,
		TotalCost:   m.TotalCost,
		Complexity:  m.Complexity,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudgetItem converts a domain BudgetItem to its model form.
func ToModelBudgetItem(d domain.BudgetItem) models.BudgetItem {
	return models.BudgetItem{
		ItemID:          d.ItemID,
		BudgetID:        d.BudgetID,
		Name:            d.Name,
		Description:     d.Description,
		PricePerM2:      d.PricePerM2,
		SquareMeters:    d.SquareMeters,
		DevelopmentTime: d.DevelopmentTime,
		ImagesQuantity:  d.ImagesQuantity,
		Complexity:      int(d.Complexity),
		Total:           d.Total,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetItem converts a model BudgetItem to its domain form.
func ToDomainBudgetItem(m models.BudgetItem) domain.BudgetItem {
	return domain.BudgetItem{
		ItemID:          m.ItemID,
		BudgetID:        m.BudgetID,
		Name:            m.Name,
		Description:     m.Description,
		PricePerM2:      m.PricePerM2,
		SquareMeters:    m.SquareMeters,
		DevelopmentTime: m.DevelopmentTime,
		ImagesQuantity:  m.ImagesQuantity,
		Complexity:      domain.ComplexityLevel(m.Complexity),
		Total:           m.Total,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudgetAdditional converts a domain BudgetAdditional to its model form.
func ToModelBudgetAdditional(d domain.BudgetAdditional) models.BudgetAdditional {
	return models.BudgetAdditional{
		AdditionalID:          d.AdditionalID,
		BudgetID:              d.BudgetID,
		WetAreaQuantity:       d.WetAreaQuantity,
		DryAreaQuantity:       d.DryAreaQuantity,
		WetAreaPercentage:     d.WetAreaPercentage,
		DeliveryTimeDays:      d.DeliveryTimeDays,
		DisableDeliveryCharge: d.DisableDeliveryCharge,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetAdditional converts a model BudgetAdditional to its domain form.
func ToDomainBudgetAdditional(m models.BudgetAdditional) domain.BudgetAdditional {
	return domain.BudgetAdditional{
		AdditionalID:          m.AdditionalID,
		BudgetID:              m.BudgetID,
		WetAreaQuantity:       m.WetAreaQuantity,
		DryAreaQuantity:       m.DryAreaQuantity,
		WetAreaPercentage:     m.WetAreaPercentage,
		DeliveryTimeDays:      m.DeliveryTimeDays,
		DisableDeliveryCharge: m.DisableDeliveryCharge,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBudgetReference converts a domain BudgetReference to its model form.
func ToModelBudgetReference(d domain.BudgetReference) models.BudgetReference {
	return models.BudgetReference{
		ReferenceID: d.ReferenceID,
		BudgetID:    d.BudgetID,
		ProjectName: d.ProjectName,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetReference converts a model BudgetReference to its domain form.
func ToDomainBudgetReference(m models.BudgetReference) domain.BudgetReference {
	return domain.BudgetReference{
		ReferenceID: m.ReferenceID,
		BudgetID:    m.BudgetID,
		ProjectName: m.ProjectName,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
