package dashboard

import (
	"sync"
	"time"
	"unsafe"
)

// identity identifica uma slice pela referência (array de suporte + tamanho),
// não pelo conteúdo.
type identity struct {
	ptr uintptr
	n   int
}

func identityOf[T any](s []T) identity {
	if len(s) == 0 {
		return identity{}
	}
	return identity{ptr: uintptr(unsafe.Pointer(unsafe.SliceData(s))), n: len(s)}
}

type metricsKey struct {
	leads, visits, contracts, properties identity
	day                                  string
}

type pendenciesKey struct {
	leads, visits, properties, followUps identity
	day                                  string
}

type recentKey struct {
	leads identity
	day   string
}

// Memo recalcula cada agregado apenas quando a referência de alguma das suas
// entradas muda ou quando o dia de now muda. Os índices por id também ficam em
// cache pela referência da coleção. Os valores devolvidos são compartilhados
// entre chamadas e não devem ser alterados.
//
// O último Snapshot fica retido para que os endereços usados nas chaves não
// sejam reaproveitados pelo GC.
type Memo struct {
	mu   sync.Mutex
	last Snapshot

	leadsByIDKey      identity
	leadsByID         leadIndex
	propertiesByIDKey identity
	propertiesByID    propertyIndex

	metricsOK  bool
	metricsKey metricsKey
	metrics    Metrics

	pendenciesOK  bool
	pendenciesKey pendenciesKey
	pendencies    Pendencies

	insightsOK  bool
	insightsKey identity
	insights    PropertyInsights

	recentOK  bool
	recentKey recentKey
	recent    []RecentLead

	computations int
}

func NewMemo() *Memo {
	return &Memo{}
}

func dayKey(now time.Time) string {
	return StartOfDay(now).Format(time.RFC3339)
}

func (m *Memo) View(s Snapshot, now time.Time) View {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.last = s
	day := dayKey(now)

	leads, visits := identityOf(s.Leads), identityOf(s.Visits)
	contracts, properties := identityOf(s.Contracts), identityOf(s.Properties)
	followUps := identityOf(s.FollowUps)

	if m.leadsByID == nil || m.leadsByIDKey != leads {
		m.leadsByID = indexLeads(s.Leads)
		m.leadsByIDKey = leads
	}
	if m.propertiesByID == nil || m.propertiesByIDKey != properties {
		m.propertiesByID = indexProperties(s.Properties)
		m.propertiesByIDKey = properties
	}

	mk := metricsKey{leads, visits, contracts, properties, day}
	if !m.metricsOK || m.metricsKey != mk {
		m.metrics = ComputeMetrics(s.Leads, s.Visits, s.Contracts, s.Properties, now)
		m.metricsKey, m.metricsOK = mk, true
		m.computations++
	}

	pk := pendenciesKey{leads, visits, properties, followUps, day}
	if !m.pendenciesOK || m.pendenciesKey != pk {
		m.pendencies = computePendencies(m.leadsByID, m.propertiesByID, s.Leads, s.Visits, s.FollowUps, now)
		m.pendenciesKey, m.pendenciesOK = pk, true
		m.computations++
	}

	if !m.insightsOK || m.insightsKey != properties {
		m.insights = ComputePropertyInsights(s.Properties)
		m.insightsKey, m.insightsOK = properties, true
		m.computations++
	}

	rk := recentKey{leads, day}
	if !m.recentOK || m.recentKey != rk {
		m.recent = RecentLeads(s.Leads, now)
		m.recentKey, m.recentOK = rk, true
		m.computations++
	}

	// IsPast depende do instante exato, então a linha do tempo é sempre refeita.
	return View{
		GeneratedAt:      now,
		Metrics:          m.metrics,
		Pendencies:       m.pendencies,
		PropertyInsights: m.insights,
		RecentLeads:      m.recent,
		TodayTimeline:    todayTimeline(m.leadsByID, m.propertiesByID, s.Visits, now),
	}
}
