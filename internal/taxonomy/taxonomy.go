// Package taxonomy holds the closed category enumerations the marts layer is
// built on: which categories are income, which are savings, which represent
// internal transfers, and how fine-grained categories fold into
// meta-categories.
//
// The lists ship as an embedded YAML document parsed once at startup into an
// immutable Taxonomy value that is passed to the components that need it. A
// config override path may point at an alternate file.
package taxonomy

import (
	_ "embed"
	"fmt"
	"os"

	"jcarver/finpipe/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

// MetaGroup maps a set of categories to one meta-category. Groups are
// evaluated in order; a category appearing in no group maps to OTHER.
type MetaGroup struct {
	Meta       models.MetaCategory `yaml:"meta"`
	Categories []models.Category   `yaml:"categories"`
}

// Taxonomy is the immutable category configuration for one pipeline run.
type Taxonomy struct {
	// Income lists categories representing money earned.
	Income []models.Category `yaml:"income"`
	// Savings lists transfers to/from investment accounts.
	Savings []models.Category `yaml:"savings"`
	// ExcludedBank lists bank categories dropped during unification because
	// they are the bank-side record of an internal transfer.
	ExcludedBank []models.Category `yaml:"excluded_bank"`
	// ExcludedCard lists card categories dropped during unification.
	ExcludedCard []models.Category `yaml:"excluded_card"`
	// MetaGroups is the ordered category -> meta-category mapping.
	MetaGroups []MetaGroup `yaml:"meta_groups"`

	income  map[models.Category]bool
	savings map[models.Category]bool
	exBank  map[models.Category]bool
	exCard  map[models.Category]bool
	meta    map[models.Category]models.MetaCategory
}

// Default returns the taxonomy embedded in the binary.
func Default() (*Taxonomy, error) {
	return parse(defaultTaxonomyYAML)
}

// LoadFile reads a taxonomy override from disk.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return &t, nil
}

// index builds the lookup sets and validates the configuration.
func (t *Taxonomy) index() error {
	t.income = toSet(t.Income)
	t.savings = toSet(t.Savings)
	t.exBank = toSet(t.ExcludedBank)
	t.exCard = toSet(t.ExcludedCard)

	for c := range t.savings {
		if t.income[c] {
			return fmt.Errorf("taxonomy: category %s is both income and savings", c)
		}
	}

	t.meta = make(map[models.Category]models.MetaCategory)
	for _, group := range t.MetaGroups {
		if group.Meta == "" {
			return fmt.Errorf("taxonomy: meta group with empty meta-category")
		}
		for _, c := range group.Categories {
			// Earlier groups win, matching ordered evaluation.
			if _, ok := t.meta[c]; !ok {
				t.meta[c] = group.Meta
			}
		}
	}
	return nil
}

func toSet(categories []models.Category) map[models.Category]bool {
	set := make(map[models.Category]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}

// IsIncome reports whether the category is an income category.
func (t *Taxonomy) IsIncome(c models.Category) bool { return t.income[c] }

// IsSavings reports whether the category is a savings category.
func (t *Taxonomy) IsSavings(c models.Category) bool { return t.savings[c] }

// ExcludedFromUnified reports whether a category from the given source is
// dropped during unification. These are internal transfers recorded on both
// sides; keeping them would double count the same economic event.
func (t *Taxonomy) ExcludedFromUnified(source models.Source, c models.Category) bool {
	if source == models.SourceBankAccount {
		return t.exBank[c]
	}
	return t.exCard[c]
}

// MetaCategoryFor returns the meta-category for a category. Total: unmapped
// categories resolve to OTHER.
func (t *Taxonomy) MetaCategoryFor(c models.Category) models.MetaCategory {
	if meta, ok := t.meta[c]; ok {
		return meta
	}
	return models.MetaOther
}
