package ledger

import (
	"sort"
	"strings"
)

// ProjectRecords is the raw material for deciding which suppliers a project shows
type ProjectRecords struct {
	Catalog       []Supplier
	Expenses      []Expense
	Deposits      []Deposit
	Links         []ProjectSupplierLink
	SessionLinked []string
}

// VisibleSuppliers returns the catalog suppliers shown in a project: not globally
// deleted and having activity, a live link or a session link.
func VisibleSuppliers(r ProjectRecords) []Supplier {
	shown := make(map[string]struct{})
	for _, e := range r.Expenses {
		if e.DeletedAt == nil {
			shown[e.SupplierID] = struct{}{}
		}
	}
	for _, d := range r.Deposits {
		if d.DeletedAt == nil {
			shown[d.SupplierID] = struct{}{}
		}
	}
	for _, l := range r.Links {
		if !l.IsArchived() {
			shown[l.SupplierID] = struct{}{}
		}
	}
	for _, id := range r.SessionLinked {
		shown[id] = struct{}{}
	}

	out := make([]Supplier, 0, len(shown))
	for _, s := range r.Catalog {
		if s.IsDeleted() {
			continue
		}
		if _, ok := shown[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// ArchivedSuppliers returns the suppliers whose project link is soft-deleted and
// that have no live link left
func ArchivedSuppliers(catalog []Supplier, links []ProjectSupplierLink) []Supplier {
	live := make(map[string]struct{})
	archived := make(map[string]struct{})
	for _, l := range links {
		if l.IsArchived() {
			archived[l.SupplierID] = struct{}{}
		} else {
			live[l.SupplierID] = struct{}{}
		}
	}
	out := make([]Supplier, 0, len(archived))
	for _, s := range catalog {
		if s.IsDeleted() {
			continue
		}
		if _, ok := archived[s.ID]; !ok {
			continue
		}
		if _, ok := live[s.ID]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// OrderSuppliers sorts suppliers by the session order first, then by the
// persisted sort order of their links, then by name
func OrderSuppliers(suppliers []Supplier, inMemory []string, links []ProjectSupplierLink) []Supplier {
	memPos := make(map[string]int, len(inMemory))
	for i, id := range inMemory {
		memPos[id] = i
	}
	linkPos := make(map[string]int, len(links))
	for _, l := range links {
		if !l.IsArchived() {
			linkPos[l.SupplierID] = l.SortOrder
		}
	}

	out := append([]Supplier(nil), suppliers...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ai, aok := memPos[a.ID]
		bi, bok := memPos[b.ID]
		if aok != bok {
			return aok
		}
		if aok && ai != bi {
			return ai < bi
		}
		al, alok := linkPos[a.ID]
		bl, blok := linkPos[b.ID]
		if alok != blok {
			return alok
		}
		if alok && al != bl {
			return al < bl
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	return out
}
