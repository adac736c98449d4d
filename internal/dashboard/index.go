package dashboard

import "github.com/xavierca1/imobi/internal/entity"

// Os índices apontam para os elementos do snapshot; nada aqui os altera.
// Com ids repetidos prevalece o último.

type leadIndex map[string]*entity.Lead

type propertyIndex map[string]*entity.Property

func indexLeads(leads []entity.Lead) leadIndex {
	idx := make(leadIndex, len(leads))
	for i := range leads {
		idx[leads[i].ID] = &leads[i]
	}
	return idx
}

func indexProperties(properties []entity.Property) propertyIndex {
	idx := make(propertyIndex, len(properties))
	for i := range properties {
		idx[properties[i].ID] = &properties[i]
	}
	return idx
}
