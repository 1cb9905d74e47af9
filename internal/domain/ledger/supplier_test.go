package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierIDFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Béton Plus", "béton_plus"},
		{"  ACIER   du  Nord ", "acier_du_nord"},
		{"Sable\tFin", "sable_fin"},
		{"solo", "solo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SupplierIDFromName(tt.name))
		})
	}
}

func TestNewSupplier(t *testing.T) {
	t.Run("applies default color", func(t *testing.T) {
		s, err := NewSupplier("Béton Plus", "")
		require.NoError(t, err)
		assert.Equal(t, "béton_plus", s.ID)
		assert.Equal(t, DefaultSupplierColor, s.Color)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		s, err := NewSupplier("   ", "bg-red-500")
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrSupplierRequired)
	})
}

func TestSupplier_ConfirmDeletion(t *testing.T) {
	s := &Supplier{ID: "beton", Name: "Beton"}
	assert.NoError(t, s.ConfirmDeletion("Beton"))
	assert.ErrorIs(t, s.ConfirmDeletion("beton"), ErrConfirmationMismatch)
	assert.ErrorIs(t, s.ConfirmDeletion(""), ErrConfirmationMismatch)
}

func TestVisibleSuppliers(t *testing.T) {
	now := time.Now()
	catalog := []Supplier{
		{ID: "active", Name: "Active"},
		{ID: "linked", Name: "Linked"},
		{ID: "session", Name: "Session"},
		{ID: "archived", Name: "Archived"},
		{ID: "gone", Name: "Gone", DeletedAt: &now},
		{ID: "other", Name: "Other"},
	}
	records := ProjectRecords{
		Catalog:  catalog,
		Expenses: []Expense{{SupplierID: "active"}, {SupplierID: "gone"}, {SupplierID: "archived", DeletedAt: &now}},
		Links: []ProjectSupplierLink{
			{SupplierID: "linked"},
			{SupplierID: "archived", DeletedAt: &now},
		},
		SessionLinked: []string{"session"},
	}

	visible := VisibleSuppliers(records)
	ids := make([]string, 0, len(visible))
	for _, s := range visible {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"active", "linked", "session"}, ids)

	archived := ArchivedSuppliers(catalog, records.Links)
	require.Len(t, archived, 1)
	assert.Equal(t, "archived", archived[0].ID)
}

func TestOrderSuppliers(t *testing.T) {
	suppliers := []Supplier{{ID: "c", Name: "Charlie"}, {ID: "a", Name: "alpha"}, {ID: "b", Name: "Bravo"}, {ID: "d", Name: "Delta"}}
	links := []ProjectSupplierLink{{ProjectID: uuid.New(), SupplierID: "d", SortOrder: 0}, {SupplierID: "c", SortOrder: 1}}

	t.Run("link order then name", func(t *testing.T) {
		got := OrderSuppliers(suppliers, nil, links)
		assert.Equal(t, []string{"d", "c", "a", "b"}, supplierIDs(got))
	})

	t.Run("session order wins", func(t *testing.T) {
		got := OrderSuppliers(suppliers, []string{"b", "a"}, links)
		assert.Equal(t, []string{"b", "a", "d", "c"}, supplierIDs(got))
	})
}

func supplierIDs(ss []Supplier) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.ID
	}
	return out
}
