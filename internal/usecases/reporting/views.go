package reporting

import (
	"github.com/vfg2006/store-performance-api/internal/config"
	"github.com/vfg2006/store-performance-api/internal/domain"
	"github.com/vfg2006/store-performance-api/pkg/utils"
)

// TrendSet reúne as direções de variação de um período contra o anterior.
type TrendSet struct {
	Incoming       domain.Trend `json:"incoming"`
	Approved       domain.Trend `json:"approved"`
	SettledTrx     domain.Trend `json:"settled_trx"`
	GMV            domain.Trend `json:"gmv"`
	ApprovalRate   domain.Trend `json:"approval_rate"`
	ConversionRate domain.Trend `json:"conversion_rate"`
}

// MonthlyView é o consolidado mensal acrescido das taxas derivadas, das
// classificações por faixa e das tendências contra o mês anterior. Taxas nil
// serializam como null e são exibidas como "sem dados".
type MonthlyView struct {
	domain.MonthlyAggregate

	ApprovalRate      *float64 `json:"approval_rate"`
	ConversionRate    *float64 `json:"conversion_rate"`
	StorePenetration  *float64 `json:"store_penetration"`
	AverageOrderValue *float64 `json:"average_order_value"`
	GMVCompact        string   `json:"gmv_compact"`

	ApprovalBadge    domain.Badge `json:"approval_badge"`
	ConversionBadge  domain.Badge `json:"conversion_badge"`
	PenetrationBadge domain.Badge `json:"penetration_badge"`

	Trends TrendSet `json:"trends"`
}

// QuarterlyView é o equivalente trimestral de MonthlyView.
type QuarterlyView struct {
	domain.QuarterlyAggregate

	ApprovalRate      *float64 `json:"approval_rate"`
	ConversionRate    *float64 `json:"conversion_rate"`
	StorePenetration  *float64 `json:"store_penetration"`
	AverageOrderValue *float64 `json:"average_order_value"`
	GMVCompact        string   `json:"gmv_compact"`

	ApprovalBadge    domain.Badge `json:"approval_badge"`
	ConversionBadge  domain.Badge `json:"conversion_badge"`
	PenetrationBadge domain.Badge `json:"penetration_badge"`

	Trends TrendSet `json:"trends"`
}

// TotalsView é o acumulado de todos os meses carregados com suas taxas.
type TotalsView struct {
	domain.MetricSums

	ApprovalRate      *float64 `json:"approval_rate"`
	ConversionRate    *float64 `json:"conversion_rate"`
	AverageOrderValue *float64 `json:"average_order_value"`
	GMVCompact        string   `json:"gmv_compact"`
}

// StoreView é a linha da tabela de lojas após filtro e ordenação.
type StoreView struct {
	domain.ProcessedStore

	ApprovalBadge     domain.Badge `json:"approval_badge"`
	ConversionBadge   domain.Badge `json:"conversion_badge"`
	TotalGMVCompact   string       `json:"total_gmv_compact"`
	AverageOrderValue *float64     `json:"average_order_value"`
}

func buildMonthlyViews(monthly []domain.MonthlyAggregate, thresholds config.Thresholds) []MonthlyView {
	views := make([]MonthlyView, 0, len(monthly))

	for i, month := range monthly {
		view := MonthlyView{
			MonthlyAggregate:  month,
			ApprovalRate:      month.ApprovalRate(),
			ConversionRate:    month.ConversionRate(),
			StorePenetration:  month.StorePenetration(),
			AverageOrderValue: roundMoney(month.AverageOrderValue()),
			GMVCompact:        utils.FormatCompact(month.GMV),
		}

		view.ApprovalBadge = domain.ClassifyRate(view.ApprovalRate, thresholds.Approval())
		view.ConversionBadge = domain.ClassifyRate(view.ConversionRate, thresholds.Conversion())
		view.PenetrationBadge = domain.ClassifyRate(view.StorePenetration, thresholds.Penetration())

		if i > 0 {
			previous := &views[i-1]
			view.Trends = TrendSet{
				Incoming:       domain.TrendOfInts(month.Incoming, previous.Incoming, true),
				Approved:       domain.TrendOfInts(month.Approved, previous.Approved, true),
				SettledTrx:     domain.TrendOfInts(month.SettledTrx, previous.SettledTrx, true),
				GMV:            domain.TrendOf(domain.Float(month.GMV), domain.Float(previous.GMV)),
				ApprovalRate:   domain.TrendOf(view.ApprovalRate, previous.ApprovalRate),
				ConversionRate: domain.TrendOf(view.ConversionRate, previous.ConversionRate),
			}
		} else {
			view.Trends = flatTrends()
		}

		views = append(views, view)
	}

	return views
}

func buildQuarterlyViews(quarters []domain.QuarterlyAggregate, thresholds config.Thresholds) []QuarterlyView {
	views := make([]QuarterlyView, 0, len(quarters))

	for i, quarter := range quarters {
		view := QuarterlyView{
			QuarterlyAggregate: quarter,
			ApprovalRate:       quarter.ApprovalRate(),
			ConversionRate:     quarter.ConversionRate(),
			StorePenetration:   quarter.StorePenetration(),
			AverageOrderValue:  roundMoney(quarter.AverageOrderValue()),
			GMVCompact:         utils.FormatCompact(quarter.GMV),
		}

		view.ApprovalBadge = domain.ClassifyRate(view.ApprovalRate, thresholds.Approval())
		view.ConversionBadge = domain.ClassifyRate(view.ConversionRate, thresholds.Conversion())
		view.PenetrationBadge = domain.ClassifyRate(view.StorePenetration, thresholds.Penetration())

		if i > 0 {
			previous := &views[i-1]
			view.Trends = TrendSet{
				Incoming:       domain.TrendOfInts(quarter.Incoming, previous.Incoming, true),
				Approved:       domain.TrendOfInts(quarter.Approved, previous.Approved, true),
				SettledTrx:     domain.TrendOfInts(quarter.SettledTrx, previous.SettledTrx, true),
				GMV:            domain.TrendOf(domain.Float(quarter.GMV), domain.Float(previous.GMV)),
				ApprovalRate:   domain.TrendOf(view.ApprovalRate, previous.ApprovalRate),
				ConversionRate: domain.TrendOf(view.ConversionRate, previous.ConversionRate),
			}
		} else {
			view.Trends = flatTrends()
		}

		views = append(views, view)
	}

	return views
}

func buildTotalsView(totals domain.MetricSums) *TotalsView {
	return &TotalsView{
		MetricSums:        totals,
		ApprovalRate:      totals.ApprovalRate(),
		ConversionRate:    totals.ConversionRate(),
		AverageOrderValue: roundMoney(totals.AverageOrderValue()),
		GMVCompact:        utils.FormatCompact(totals.GMV),
	}
}

func buildStoreViews(stores []domain.ProcessedStore, thresholds config.Thresholds) []StoreView {
	views := make([]StoreView, 0, len(stores))

	for _, store := range stores {
		views = append(views, StoreView{
			ProcessedStore:    store,
			ApprovalBadge:     domain.ClassifyRate(store.AvgApproval, thresholds.Approval()),
			ConversionBadge:   domain.ClassifyRate(store.AvgConversion, thresholds.Conversion()),
			TotalGMVCompact:   utils.FormatCompact(store.Totals.GMV),
			AverageOrderValue: roundMoney(store.Totals.AverageOrderValue()),
		})
	}

	return views
}

// roundMoney arredonda um valor monetário derivado para duas casas antes da
// serialização, preservando nil como "sem dados".
func roundMoney(value *float64) *float64 {
	if value == nil {
		return nil
	}

	rounded := utils.RoundWithTwoDecimalPlace(*value)
	return &rounded
}

// flatTrends é o conjunto de tendências do primeiro período da série, que não
// tem anterior para comparar.
func flatTrends() TrendSet {
	return TrendSet{
		Incoming:       domain.TrendFlat,
		Approved:       domain.TrendFlat,
		SettledTrx:     domain.TrendFlat,
		GMV:            domain.TrendFlat,
		ApprovalRate:   domain.TrendFlat,
		ConversionRate: domain.TrendFlat,
	}
}
