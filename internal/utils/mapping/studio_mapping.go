package mapping

import (
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
)

// ToModelStudio converts a domain Studio to a model Studio
func ToModelStudio(d domain.Studio) models.Studio {
	return models.Studio{
		StudioID:       d.StudioID,
		Name:           d.Name,
		Description:    d.Description,
		BaseHourlyRate: d.BaseHourlyRate,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStudio converts a model Studio to a domain Studio
func ToDomainStudio(m models.Studio) domain.Studio {
	return domain.Studio{
		StudioID:       m.StudioID,
		Name:           m.Name,
		Description:    m.Description,
		BaseHourlyRate: m.BaseHourlyRate,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUserStudio converts a domain membership to its row form.
func ToModelUserStudio(d domain.UserStudio) models.UserStudio {
	return models.UserStudio{
		UserID:   d.UserID,
		StudioID: d.StudioID,
		Role:     string(d.Role),
		JoinedAt: d.JoinedAt,
	}
}

// ToDomainUserStudio converts a membership row to its domain form.
func ToDomainUserStudio(m models.UserStudio) domain.UserStudio {
	return domain.UserStudio{
		UserID:   m.UserID,
		StudioID: m.StudioID,
		Role:     domain.UserStudioRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}
