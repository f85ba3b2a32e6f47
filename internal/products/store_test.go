package products

import (
	"testing"

	"farmstead/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleInput() Input {
	return Input{
		Name:          "Corn Seeds",
		Category:      models.CategorySeeds,
		Unit:          models.UnitKg,
		CurrentStock:  50,
		PurchasePrice: 75,
	}
}

func TestNewStore_Seeded(t *testing.T) {
	s := NewStore()
	items := s.List()
	require.Len(t, items, 3)
	require.Equal(t, "Wheat Seeds", items[0].Name)
	require.Equal(t, "Organic Fertilizer", items[1].Name)
	require.Equal(t, "Animal Feed", items[2].Name)

	seen := map[string]bool{}
	for _, p := range items {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestCreate_PrependsWithFreshID(t *testing.T) {
	s := NewStore()
	before := s.List()

	p := s.Create(sampleInput())
	require.NotEmpty(t, p.ID)
	for _, old := range before {
		require.NotEqual(t, old.ID, p.ID)
	}

	items := s.List()
	require.Len(t, items, len(before)+1)
	require.Equal(t, p, items[0])
	require.Equal(t, before, items[1:])
}

func TestList_ReturnsCopy(t *testing.T) {
	s := NewStore()
	items := s.List()
	items[0].Name = "mutated"
	require.NotEqual(t, "mutated", s.List()[0].Name)
}

func TestUpdate_PreservesIDAndPosition(t *testing.T) {
	s := NewStore()
	before := s.List()
	target := before[1]

	in := sampleInput()
	updated, err := s.Update(target.ID, in)
	require.NoError(t, err)
	require.Equal(t, target.ID, updated.ID)
	require.Equal(t, in.Name, updated.Name)

	after := s.List()
	require.Len(t, after, len(before))
	require.Equal(t, updated, after[1])
	// the other records are untouched
	require.Equal(t, before[0], after[0])
	require.Equal(t, before[2], after[2])
}

func TestUpdate_NotFound(t *testing.T) {
	s := NewStore()
	before := s.List()

	_, err := s.Update("missing", sampleInput())
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, before, s.List())
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	s := NewStore()
	before := s.List()
	target := before[1]

	require.NoError(t, s.Delete(target.ID))

	after := s.List()
	require.Len(t, after, len(before)-1)
	require.Equal(t, before[0], after[0])
	require.Equal(t, before[2], after[1])
}

func TestDelete_NotFound(t *testing.T) {
	s := NewStore()
	before := s.List()

	require.ErrorIs(t, s.Delete("missing"), ErrNotFound)
	require.Equal(t, before, s.List())
}

func TestGet(t *testing.T) {
	s := NewStore()
	target := s.List()[0]

	got, err := s.Get(target.ID)
	require.NoError(t, err)
	require.Equal(t, target, got)

	_, err = s.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}
