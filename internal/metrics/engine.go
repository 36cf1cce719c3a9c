package metrics

import (
	"context"
	"fmt"
	"sort"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/store"

	"github.com/shopspring/decimal"
)

// MortgageContribution is the fixed monthly income contribution toward the
// mortgage that does not flow through either imported account.
var MortgageContribution = decimal.NewFromInt(850)

// Engine answers aggregate queries over the mart tables. It only reads;
// mart ownership stays with the marts builder.
type Engine struct {
	store  store.TableStore
	logger logging.Logger
}

// NewEngine builds a metrics engine over the given store.
func NewEngine(tableStore store.TableStore, logger logging.Logger) *Engine {
	return &Engine{store: tableStore, logger: logger}
}

// CategorySpend is one row of the average-monthly-spend view.
type CategorySpend struct {
	MetaCategory             models.MetaCategory `json:"meta_category"`
	NumberOfMonthsInSample   int                 `json:"number_of_months_in_sample"`
	MonthsWithTransactions   int                 `json:"months_with_transactions"`
	SpendingOccursEveryMonth bool                `json:"spending_occurs_every_month"`
	AvgMonthlyTransactions   float64             `json:"avg_monthly_transactions"`
	TotalSpend               decimal.Decimal     `json:"total_spend"`
	AvgMonthlySpend          decimal.Decimal     `json:"avg_monthly_spend"`
	PctOfAvgMonthlySpend     decimal.Decimal     `json:"pct_of_avg_monthly_spend"`
}

// MonthlySpending is one month's total spend.
type MonthlySpending struct {
	YearMonth       string          `json:"year_month"`
	MonthlySpending decimal.Decimal `json:"monthly_spending"`
}

// MonthlySavings is one month's net transfer into savings. The series is
// densified: months with no brokerage activity appear with a zero amount.
type MonthlySavings struct {
	YearMonth      string          `json:"year_month"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
}

// MonthlySalary is one month's salary income.
type MonthlySalary struct {
	YearMonth     string          `json:"year_month"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

// BudgetRow is one line of the average monthly budget waterfall.
type BudgetRow struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// Budget waterfall row kinds.
const (
	BudgetCategorySpending = "SPENDING"
	BudgetCategoryIncome   = "INCOME"
	BudgetCategoryCashFlow = "CASH_FLOW"
)

// BudgetHistoryRow joins one month's spending, salary and savings, plus the
// running total of savings up to that month.
type BudgetHistoryRow struct {
	YearMonth         string          `json:"year_month"`
	MonthlySpending   decimal.Decimal `json:"monthly_spending"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	MonthlySavings    decimal.Decimal `json:"monthly_savings"`
	CumulativeSavings decimal.Decimal `json:"cumulative_savings"`
}

// AverageMonthlySpendingByMetaCategory summarizes spending per meta-category
// over the window. The average divides by the count of distinct months
// observed anywhere in the window, not just months where the category had
// spend, so sporadic categories are deliberately diluted toward their true
// monthly cost.
func (e *Engine) AverageMonthlySpendingByMetaCategory(ctx context.Context, period Period, includeWedding bool) ([]CategorySpend, error) {
	rows, err := e.windowedTable(ctx, store.MartsSpending, period)
	if err != nil {
		return nil, err
	}
	rows = applyWeddingFilter(rows, includeWedding)

	type monthlyKey struct {
		yearMonth string
		meta      models.MetaCategory
	}
	type monthlyAgg struct {
		spend decimal.Decimal
		count int
	}
	monthly := make(map[monthlyKey]*monthlyAgg)
	for _, tx := range rows {
		key := monthlyKey{tx.YearMonth, tx.MetaCategory}
		agg, ok := monthly[key]
		if !ok {
			agg = &monthlyAgg{}
			monthly[key] = agg
		}
		agg.spend = agg.spend.Add(tx.Amount)
		agg.count++
	}

	numberOfMonths := len(distinctYearMonths(rows))

	type categoryAgg struct {
		totalSpend        decimal.Decimal
		totalTransactions int
		monthsWithSpend   int
	}
	byMeta := make(map[models.MetaCategory]*categoryAgg)
	for key, agg := range monthly {
		cat, ok := byMeta[key.meta]
		if !ok {
			cat = &categoryAgg{}
			byMeta[key.meta] = cat
		}
		cat.totalSpend = cat.totalSpend.Add(agg.spend)
		cat.totalTransactions += agg.count
		cat.monthsWithSpend++
	}

	var result []CategorySpend
	totalAvgSpend := decimal.Zero
	for meta, cat := range byMeta {
		avgSpend := decimal.Zero
		if numberOfMonths > 0 {
			avgSpend = cat.totalSpend.Div(decimal.NewFromInt(int64(numberOfMonths)))
		}
		totalAvgSpend = totalAvgSpend.Add(avgSpend)

		result = append(result, CategorySpend{
			MetaCategory:             meta,
			NumberOfMonthsInSample:   numberOfMonths,
			MonthsWithTransactions:   cat.monthsWithSpend,
			SpendingOccursEveryMonth: cat.monthsWithSpend == numberOfMonths,
			AvgMonthlyTransactions:   float64(cat.totalTransactions) / float64(cat.monthsWithSpend),
			TotalSpend:               cat.totalSpend,
			AvgMonthlySpend:          avgSpend,
		})
	}

	// Share of total, rounded to 4 decimals then scaled to a percentage.
	// This is the only documented rounding in the engine.
	for i := range result {
		if totalAvgSpend.IsZero() {
			continue
		}
		result[i].PctOfAvgMonthlySpend = result[i].AvgMonthlySpend.
			Div(totalAvgSpend).Round(4).Mul(decimal.NewFromInt(100))
	}

	sort.Slice(result, func(i, j int) bool {
		cmp := result[i].AvgMonthlySpend.Cmp(result[j].AvgMonthlySpend)
		if cmp != 0 {
			return cmp < 0
		}
		return result[i].MetaCategory < result[j].MetaCategory
	})
	return result, nil
}

// MonthlySpending sums spend per month over the window.
func (e *Engine) MonthlySpending(ctx context.Context, period Period, includeWedding bool) ([]MonthlySpending, error) {
	rows, err := e.windowedTable(ctx, store.MartsSpending, period)
	if err != nil {
		return nil, err
	}
	rows = applyWeddingFilter(rows, includeWedding)

	sums := sumByMonth(rows)
	result := make([]MonthlySpending, 0, len(sums))
	for _, ym := range sortedKeys(sums) {
		result = append(result, MonthlySpending{YearMonth: ym, MonthlySpending: sums[ym]})
	}
	return result, nil
}

// MonthlySavings sums savings per month over the window, densified across
// every calendar month between the first and last observed month. A month
// with no brokerage transfer is a real zero data point in the series, not a
// missing one.
func (e *Engine) MonthlySavings(ctx context.Context, period Period) ([]MonthlySavings, error) {
	rows, err := e.windowedTable(ctx, store.MartsSavings, period)
	if err != nil {
		return nil, err
	}

	sums := sumByMonth(rows)
	if len(sums) == 0 {
		return []MonthlySavings{}, nil
	}

	observed := sortedKeys(sums)
	months, err := monthRange(observed[0], observed[len(observed)-1])
	if err != nil {
		return nil, err
	}

	result := make([]MonthlySavings, 0, len(months))
	for _, ym := range months {
		result = append(result, MonthlySavings{YearMonth: ym, MonthlySavings: sums[ym]})
	}
	return result, nil
}

// AverageMonthlySavings is the mean of the densified savings series. An
// empty window yields zero.
func (e *Engine) AverageMonthlySavings(ctx context.Context, period Period) (decimal.Decimal, error) {
	series, err := e.MonthlySavings(ctx, period)
	if err != nil {
		return decimal.Zero, err
	}
	if len(series) == 0 {
		return decimal.Zero, nil
	}
	total := decimal.Zero
	for _, month := range series {
		total = total.Add(month.MonthlySavings)
	}
	return total.Div(decimal.NewFromInt(int64(len(series)))), nil
}

// MonthlySalary sums salary income per month over the window.
func (e *Engine) MonthlySalary(ctx context.Context, period Period) ([]MonthlySalary, error) {
	rows, err := e.windowedTable(ctx, store.MartsIncome, period)
	if err != nil {
		return nil, err
	}
	rows = filter(rows, func(tx models.Transaction) bool {
		return tx.Category == models.CategorySalary
	})

	sums := sumByMonth(rows)
	result := make([]MonthlySalary, 0, len(sums))
	for _, ym := range sortedKeys(sums) {
		result = append(result, MonthlySalary{YearMonth: ym, MonthlySalary: sums[ym]})
	}
	return result, nil
}

// AverageMonthlySalary is the mean of the monthly salary series. An empty
// window yields zero.
func (e *Engine) AverageMonthlySalary(ctx context.Context, period Period) (decimal.Decimal, error) {
	series, err := e.MonthlySalary(ctx, period)
	if err != nil {
		return decimal.Zero, err
	}
	if len(series) == 0 {
		return decimal.Zero, nil
	}
	total := decimal.Zero
	for _, month := range series {
		total = total.Add(month.MonthlySalary)
	}
	return total.Div(decimal.NewFromInt(int64(len(series)))), nil
}

// AverageMonthlyBudget synthesizes a waterfall-ready snapshot: average spend
// per meta-category as outflows, salary and the fixed mortgage contribution
// as income, and a final CASH_FLOW row holding the net of everything above.
func (e *Engine) AverageMonthlyBudget(ctx context.Context, period Period, includeWedding bool) ([]BudgetRow, error) {
	spending, err := e.AverageMonthlySpendingByMetaCategory(ctx, period, includeWedding)
	if err != nil {
		return nil, err
	}
	salary, err := e.AverageMonthlySalary(ctx, period)
	if err != nil {
		return nil, err
	}

	rows := make([]BudgetRow, 0, len(spending)+3)
	for _, cat := range spending {
		rows = append(rows, BudgetRow{
			Description: string(cat.MetaCategory),
			Amount:      cat.AvgMonthlySpend.Neg(),
			Category:    BudgetCategorySpending,
		})
	}
	rows = append(rows,
		BudgetRow{Description: "SALARY", Amount: salary, Category: BudgetCategoryIncome},
		BudgetRow{Description: "MORTGAGE_CONTRIBUTION", Amount: MortgageContribution, Category: BudgetCategoryIncome},
	)

	cashFlow := decimal.Zero
	for _, row := range rows {
		cashFlow = cashFlow.Add(row.Amount)
	}
	rows = append(rows, BudgetRow{Description: "CASH_FLOW", Amount: cashFlow, Category: BudgetCategoryCashFlow})
	return rows, nil
}

// MonthlyBudgetHistory left-joins monthly spending, salary and savings on
// year-month, anchored on the spending series, and carries a running
// cumulative savings total across the chronologically ordered rows. Months
// with no salary or savings activity join as zero.
func (e *Engine) MonthlyBudgetHistory(ctx context.Context, period Period, includeWedding bool) ([]BudgetHistoryRow, error) {
	spending, err := e.MonthlySpending(ctx, period, includeWedding)
	if err != nil {
		return nil, err
	}
	salary, err := e.MonthlySalary(ctx, period)
	if err != nil {
		return nil, err
	}
	savings, err := e.MonthlySavings(ctx, period)
	if err != nil {
		return nil, err
	}

	salaryByMonth := make(map[string]decimal.Decimal, len(salary))
	for _, month := range salary {
		salaryByMonth[month.YearMonth] = month.MonthlySalary
	}
	savingsByMonth := make(map[string]decimal.Decimal, len(savings))
	for _, month := range savings {
		savingsByMonth[month.YearMonth] = month.MonthlySavings
	}

	result := make([]BudgetHistoryRow, 0, len(spending))
	cumulative := decimal.Zero
	for _, month := range spending {
		monthSavings := savingsByMonth[month.YearMonth]
		cumulative = cumulative.Add(monthSavings)
		result = append(result, BudgetHistoryRow{
			YearMonth:         month.YearMonth,
			MonthlySpending:   month.MonthlySpending,
			MonthlySalary:     salaryByMonth[month.YearMonth],
			MonthlySavings:    monthSavings,
			CumulativeSavings: cumulative,
		})
	}
	return result, nil
}

// windowedTable reads a mart table and applies the period window.
func (e *Engine) windowedTable(ctx context.Context, table string, period Period) ([]models.Transaction, error) {
	rows, err := e.store.ReadTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	return subsetByPeriod(rows, period)
}

func sumByMonth(rows []models.Transaction) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range rows {
		sums[tx.YearMonth] = sums[tx.YearMonth].Add(tx.Amount)
	}
	return sums
}

func sortedKeys(sums map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
