// Package config loads and validates scoring template taxonomies.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rotagrid/pkg/rotagrid/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTaxonomy indicates a taxonomy that cannot produce a well-formed template.
var ErrInvalidTaxonomy = errors.New("invalid taxonomy")

// maxSheetName is the xlsx limit on sheet name length.
const maxSheetName = 31

// Default returns the built-in rotation comparison taxonomy.
func Default() *models.Taxonomy {
	return &models.Taxonomy{
		Title: "Rotation Comparison - Summary",
		Categories: []models.Category{
			{Name: "Death Knight", Subcategories: []string{"Blood", "Frost", "Unholy"}},
			{Name: "Demon Hunter", Subcategories: []string{"Havoc", "Vengeance"}},
			{Name: "Druid", Subcategories: []string{"Balance", "Feral", "Guardian", "Restoration"}},
			{Name: "Evoker", Subcategories: []string{"Devastation", "Preservation", "Augmentation"}},
			{Name: "Hunter", Subcategories: []string{"Beast Mastery", "Marksmanship", "Survival"}},
			{Name: "Mage", Subcategories: []string{"Arcane", "Fire", "Frost"}},
			{Name: "Monk", Subcategories: []string{"Brewmaster", "Mistweaver", "Windwalker"}},
			{Name: "Paladin", Subcategories: []string{"Holy", "Protection", "Retribution"}},
			{Name: "Priest", Subcategories: []string{"Discipline", "Holy", "Shadow"}},
			{Name: "Rogue", Subcategories: []string{"Assassination", "Outlaw", "Subtlety"}},
			{Name: "Shaman", Subcategories: []string{"Elemental", "Enhancement", "Restoration"}},
			{Name: "Warlock", Subcategories: []string{"Affliction", "Demonology", "Destruction"}},
			{Name: "Warrior", Subcategories: []string{"Arms", "Fury", "Protection"}},
		},
		Sources: []string{"Wowhead", "Icy Veins", "Method.gg"},
		RotationTypes: []models.RotationType{
			{Code: "ST", Label: "Single Target"},
			{Code: "AOE", Label: "Area of Effect"},
		},
		Evaluators: []string{"Kimi (This LLM)", "Claude Opus", "Gemini 3 Pro"},
		ScoringGuide: []models.ScoreLevel{
			{Score: "5 / Pass", Description: "Perfect - Follows all patterns, proper syntax, handles edge cases"},
			{Score: "4", Description: "Good - Minor issues, mostly correct"},
			{Score: "3", Description: "Acceptable - Works but has notable issues"},
			{Score: "2", Description: "Poor - Significant problems, may not function correctly"},
			{Score: "1 / Fail", Description: "Broken - Syntax errors, wrong patterns, won't work"},
		},
		FailureChecklist: []string{
			"Uses '==' instead of '=' for equality",
			"movement_allowed inside variables section (should be root level)",
			"Calling lists/main explicitly (main is auto-executed)",
			"Missing spell morphs (override) - CHECK morph_database/",
			"Wrong empowered spell handling (missing ignore_usable/casting_check)",
			"Incorrect hero talent detection",
			"Missing parentheses for & | precedence",
			"Wrong config/variable reference (config.X vs var.X)",
		},
	}
}

// Load reads a taxonomy from a YAML file. An empty path yields the defaults.
// Sections omitted from the file keep their default values.
func Load(path string) (*models.Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*models.Taxonomy, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Marshal encodes a taxonomy as YAML.
func Marshal(t *models.Taxonomy) ([]byte, error) {
	return yaml.Marshal(t)
}

// Save writes a taxonomy to a YAML file.
func Save(t *models.Taxonomy, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal taxonomy: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write taxonomy: %w", err)
	}
	return nil
}

// Validate checks that every enumerated row is unique and that every
// category can become both an xlsx sheet and a CSV file.
func Validate(t *models.Taxonomy) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(t.Categories) == 0 {
		add("no categories")
	}
	if len(t.Sources) == 0 {
		add("no sources")
	}
	if len(t.RotationTypes) == 0 {
		add("no rotation types")
	}
	if len(t.Evaluators) == 0 {
		add("no evaluators")
	}

	categories := make(map[string]bool)
	slugs := make(map[string]string)
	for _, c := range t.Categories {
		if err := checkSheetName(c.Name); err != nil {
			add("category %q: %v", c.Name, err)
		}
		if categories[strings.ToLower(c.Name)] {
			add("duplicate category %q", c.Name)
		}
		categories[strings.ToLower(c.Name)] = true

		slug := Slug(c.Name)
		if other, ok := slugs[slug]; ok && other != c.Name {
			add("categories %q and %q share file name %q", other, c.Name, slug)
		}
		slugs[slug] = c.Name

		if len(c.Subcategories) == 0 {
			add("category %q has no subcategories", c.Name)
		}
		checkUnique(fmt.Sprintf("category %q subcategory", c.Name), c.Subcategories, add)
	}

	checkUnique("source", t.Sources, add)
	codes := make([]string, len(t.RotationTypes))
	for i, rt := range t.RotationTypes {
		codes[i] = rt.Code
	}
	checkUnique("rotation type", codes, add)

	columns := append([]string{models.HeaderSubcategory, models.HeaderSource, models.HeaderType, models.HeaderNotes}, t.Evaluators...)
	checkUnique("column", columns, add)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTaxonomy, strings.Join(problems, "; "))
	}
	return nil
}

// Slug returns the file-name form of a category: lower case, spaces as underscores.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func checkSheetName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("empty name")
	case len([]rune(name)) > maxSheetName:
		return fmt.Errorf("longer than %d characters", maxSheetName)
	case strings.ContainsAny(name, `[]:*?/\`):
		return errors.New(`contains one of []:*?/\`)
	case strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'"):
		return errors.New("starts or ends with an apostrophe")
	case strings.EqualFold(name, models.SummarySheet):
		return errors.New("reserved for the overview sheet")
	}
	return nil
}

func checkUnique(what string, values []string, add func(string, ...any)) {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			add("empty %s", what)
			continue
		}
		if seen[v] {
			add("duplicate %s %q", what, v)
		}
		seen[v] = true
	}
}
