package dashboard

import (
	"time"

	"github.com/xavierca1/imobi/internal/entity"
)

// LoadFollowUpsMessage é a mensagem exibida quando a busca de lembretes falha.
const LoadFollowUpsMessage = "Erro ao carregar lembretes"

// Snapshot são as coleções já carregadas para um tenant.
type Snapshot struct {
	Leads      []entity.Lead
	Visits     []entity.Visit
	Contracts  []entity.Contract
	Properties []entity.Property
	FollowUps  []entity.FollowUp
}

// View é o view-model consolidado entregue ao front. Somente leitura.
type View struct {
	GeneratedAt      time.Time        `json:"generated_at"`
	Metrics          Metrics          `json:"metrics"`
	Pendencies       Pendencies       `json:"pendencies"`
	PropertyInsights PropertyInsights `json:"property_insights"`
	RecentLeads      []RecentLead     `json:"recent_leads"`
	TodayTimeline    []TimelineItem   `json:"today_timeline"`
	FollowUpsError   string           `json:"follow_ups_error,omitempty"`
}

// Build calcula todos os agregados sem cache.
func Build(s Snapshot, now time.Time) View {
	leadsByID := indexLeads(s.Leads)
	propertiesByID := indexProperties(s.Properties)

	return View{
		GeneratedAt:      now,
		Metrics:          ComputeMetrics(s.Leads, s.Visits, s.Contracts, s.Properties, now),
		Pendencies:       computePendencies(leadsByID, propertiesByID, s.Leads, s.Visits, s.FollowUps, now),
		PropertyInsights: ComputePropertyInsights(s.Properties),
		RecentLeads:      RecentLeads(s.Leads, now),
		TodayTimeline:    todayTimeline(leadsByID, propertiesByID, s.Visits, now),
	}
}
