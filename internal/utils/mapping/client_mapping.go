package mapping

import (
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		StudioID:       d.StudioID,
		Name:           d.Name,
		Company:        d.Company,
		Email:          d.Email,
		Phone:          d.Phone,
		Document:       d.Document,
		PhotoURL:       d.PhotoURL,
		AdditionalInfo: d.AdditionalInfo,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:       m.ClientID,
		StudioID:       m.StudioID,
		Name:           m.Name,
		Company:        m.Company,
		Email:          m.Email,
		Phone:          m.Phone,
		Document:       m.Document,
		PhotoURL:       m.PhotoURL,
		AdditionalInfo: m.AdditionalInfo,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
