// Package pipeline runs the ETL layers in dependency order: staging
// (normalize + classify the raw streams) then marts (unify and project).
// Each layer fully rebuilds its output tables from the layer below; a run is
// synchronous and single-flight.
package pipeline

import (
	"context"
	"fmt"

	"jcarver/finpipe/internal/classify"
	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/marts"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/normalize"
	"jcarver/finpipe/internal/store"
	"jcarver/finpipe/internal/taxonomy"
)

// Layer names, in dependency order.
const (
	LayerStaging = "staging"
	LayerMarts   = "marts"
)

var layerOrder = []string{LayerStaging, LayerMarts}

// Pipeline wires the transform stages against one store.
type Pipeline struct {
	store      store.TableStore
	classifier *classify.Classifier
	builder    *marts.Builder
	logger     logging.Logger
}

// New builds a pipeline over the given store and taxonomy.
func New(tableStore store.TableStore, tax *taxonomy.Taxonomy, logger logging.Logger) *Pipeline {
	return &Pipeline{
		store:      tableStore,
		classifier: classify.NewClassifier(logger),
		builder:    marts.NewBuilder(tableStore, tax, logger),
		logger:     logger,
	}
}

// RunAll runs every layer in dependency order.
func (p *Pipeline) RunAll(ctx context.Context) error {
	for _, layer := range layerOrder {
		if err := p.RunLayer(ctx, layer); err != nil {
			return err
		}
	}
	return nil
}

// RunLayer runs one named layer. Unknown layer names are an error.
func (p *Pipeline) RunLayer(ctx context.Context, layer string) error {
	p.logger.Info("running pipeline layer", logging.Field{Key: "layer", Value: layer})
	switch layer {
	case LayerStaging:
		return p.runStaging(ctx)
	case LayerMarts:
		return p.builder.BuildAll(ctx)
	}
	return fmt.Errorf("unknown pipeline layer %q", layer)
}

// runStaging rebuilds both staging tables from the raw layer.
func (p *Pipeline) runStaging(ctx context.Context) error {
	bank, err := p.store.ReadTable(ctx, store.RawBankAccountTransactions)
	if err != nil {
		return fmt.Errorf("read raw bank transactions: %w", err)
	}
	normalizeRows(bank)
	p.classifier.ClassifyBankAccount(bank)
	if err := p.store.ReplaceTable(ctx, store.StagingBankAccountTransactions, bank); err != nil {
		return fmt.Errorf("replace staging bank transactions: %w", err)
	}

	card, err := p.store.ReadTable(ctx, store.RawCreditCardTransactions)
	if err != nil {
		return fmt.Errorf("read raw credit card transactions: %w", err)
	}
	normalizeRows(card)
	p.classifier.ClassifyCreditCard(card)
	if err := p.store.ReplaceTable(ctx, store.StagingCreditCardTransactions, card); err != nil {
		return fmt.Errorf("replace staging credit card transactions: %w", err)
	}
	return nil
}

// normalizeRows standardizes descriptions and re-derives the calendar fields
// from the transaction date, so staging rows are consistent no matter what
// the raw layer holds.
func normalizeRows(rows []models.Transaction) {
	for i := range rows {
		rows[i].Description = normalize.Description(rows[i].Description)
		cal := normalize.CalendarFields(rows[i].Date)
		rows[i].Year = cal.Year
		rows[i].Month = cal.Month
		rows[i].YearMonth = cal.YearMonth
		rows[i].DayOfWeek = cal.DayOfWeek
	}
}
