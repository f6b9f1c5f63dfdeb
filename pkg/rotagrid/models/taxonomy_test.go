package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTaxonomy() *Taxonomy {
	return &Taxonomy{
		Categories: []Category{
			{Name: "Rogue", Subcategories: []string{"Assassination", "Outlaw", "Subtlety"}},
			{Name: "Demon Hunter", Subcategories: []string{"Havoc", "Vengeance"}},
		},
		Sources:       []string{"Wowhead", "Icy Veins", "Method.gg"},
		RotationTypes: []RotationType{{Code: "ST"}, {Code: "AOE"}},
		Evaluators:    []string{"A", "B", "C"},
	}
}

func TestRowsRogue(t *testing.T) {
	tax := testTaxonomy()
	rogue, ok := tax.Category("Rogue")
	require.True(t, ok)

	rows := tax.Rows(rogue)
	require.Len(t, rows, 18)
	assert.Equal(t, 18, tax.RowCount(rogue))

	assert.Equal(t, GridRow{
		Category: "Rogue", Subcategory: "Assassination", Source: "Wowhead", RotationType: "ST",
		Scores: []string{"", "", ""},
	}, rows[0])
	assert.Equal(t, "AOE", rows[1].RotationType)
	assert.Equal(t, "Icy Veins", rows[2].Source)
	assert.Equal(t, "Outlaw", rows[6].Subcategory)
	assert.Equal(t, RowKey{"Rogue", "Subtlety", "Method.gg", "AOE"}, rows[17].Key())

	for _, r := range rows {
		assert.True(t, r.Blank(), "row %v should be blank", r.Key())
	}
}

func TestRowsDeterministic(t *testing.T) {
	tax := testTaxonomy()
	assert.Equal(t, tax.Keys(), tax.Keys())
	assert.Len(t, tax.Keys(), 18+12)
}

func TestKeysUnique(t *testing.T) {
	seen := make(map[RowKey]bool)
	for _, k := range testTaxonomy().Keys() {
		assert.False(t, seen[k], "duplicate key %v", k)
		seen[k] = true
	}
}

func TestHeaderFollowsEvaluators(t *testing.T) {
	tax := testTaxonomy()
	assert.Equal(t, []string{"Spec", "Source", "Type", "A", "B", "C", "Notes"}, tax.Header())

	tax.Evaluators = []string{"Solo"}
	assert.Equal(t, []string{"Spec", "Source", "Type", "Solo", "Notes"}, tax.Header())

	rogue, _ := tax.Category("Rogue")
	row := tax.Rows(rogue)[0]
	assert.Equal(t, []string{"Assassination", "Wowhead", "ST", "", ""}, row.Cells())
}

func TestGridRowBlank(t *testing.T) {
	row := GridRow{Scores: []string{"", ""}}
	assert.True(t, row.Blank())
	row.Scores[1] = "4"
	assert.False(t, row.Blank())
	assert.False(t, GridRow{Notes: "syntax error"}.Blank())
}

func TestArtifactSheet(t *testing.T) {
	art := &Artifact{Sheets: []SheetGrid{{Name: "Summary"}, {Name: "Rogue"}}}
	s, ok := art.Sheet("Rogue")
	require.True(t, ok)
	assert.Equal(t, "Rogue", s.Name)
	_, ok = art.Sheet("Mage")
	assert.False(t, ok)
}

func TestPrintAreaRef(t *testing.T) {
	p := PrintArea{R1: 1, C1: 1, R2: 19, C2: 7}
	assert.Equal(t, "$A$1:$G$19", p.Ref())
	assert.True(t, p.Covers(1, 1, 19, 7))
	assert.False(t, p.Covers(1, 1, 20, 7))
}
