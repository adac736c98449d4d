package dashboard

import (
	"time"

	"github.com/xavierca1/imobi/internal/entity"
)

// Quarta-feira, 14h em UTC.
var testNow = time.Date(2026, 5, 20, 14, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func makeLead(id string, status entity.LeadStatus, createdDaysAgo, updatedDaysAgo int) entity.Lead {
	return entity.Lead{
		ID:        id,
		TenantID:  "tenant-1",
		Name:      "Lead " + id,
		Status:    status,
		CreatedAt: daysAgo(createdDaysAgo),
		UpdatedAt: daysAgo(updatedDaysAgo),
	}
}

func makeVisit(id, leadID, propertyID string, at time.Time, status entity.VisitStatus) entity.Visit {
	return entity.Visit{
		ID:           id,
		TenantID:     "tenant-1",
		LeadID:       leadID,
		PropertyID:   propertyID,
		ScheduledFor: at,
		Status:       status,
	}
}

func makeFollowUp(id, leadID string, due time.Time, status entity.FollowUpStatus) entity.FollowUp {
	return entity.FollowUp{
		ID:       id,
		TenantID: "tenant-1",
		LeadID:   leadID,
		DueAt:    due,
		Type:     entity.FollowUpTypeCall,
		Status:   status,
	}
}

func makeProperty(id, kind string, category entity.PropertyCategory, status entity.PropertyStatus) entity.Property {
	return entity.Property{
		ID:          id,
		TenantID:    "tenant-1",
		Title:       "Imóvel " + id,
		Type:        kind,
		Category:    category,
		Status:      status,
		Images:      []string{"https://cdn.imobi.app/" + id + "/1.jpg"},
		Description: "Imóvel amplo, bem localizado, perto de escolas, mercados e transporte público.",
	}
}

func at(hour, minute int) time.Time {
	return time.Date(testNow.Year(), testNow.Month(), testNow.Day(), hour, minute, 0, 0, time.UTC)
}
