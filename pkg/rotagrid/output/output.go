// Package output serializes inspected artifacts to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"github.com/ukaji3/rotagrid/pkg/rotagrid/parser"
)

// ScoredRow is a grid row with filled-in scores keyed by evaluator.
type ScoredRow struct {
	models.RowKey
	// Scores holds parsed values (int64, float64 or string); blank cells are omitted.
	Scores map[string]interface{} `json:"scores,omitempty"`
	Notes  string                 `json:"notes,omitempty"`
}

// ToJSON serializes a whole artifact.
func ToJSON(art *models.Artifact, pretty bool) ([]byte, error) {
	return marshal(art, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetGrid, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// RowsToJSON serializes recovered rows with their scores parsed.
func RowsToJSON(rows []models.GridRow, evaluators []string, pretty bool) ([]byte, error) {
	return marshal(Scored(rows, evaluators), pretty)
}

// Scored converts grid rows to ScoredRow values.
func Scored(rows []models.GridRow, evaluators []string) []ScoredRow {
	out := make([]ScoredRow, len(rows))
	for i, r := range rows {
		out[i] = ScoredRow{RowKey: r.Key(), Notes: r.Notes}
		for j, s := range r.Scores {
			if s == "" || j >= len(evaluators) {
				continue
			}
			if out[i].Scores == nil {
				out[i].Scores = make(map[string]interface{})
			}
			out[i].Scores[evaluators[j]] = parser.ParseValue(s)
		}
	}
	return out
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
