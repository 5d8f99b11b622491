package analytics

import (
	"github.com/sentinelhq/sentinel/internal/model"
)

// ForecastOptions configures the projection. All values come from engine
// configuration; zero values are filled with the original defaults.
type ForecastOptions struct {
	// Days is the projection horizon (number of points).
	Days int
	// BurnWindowDays is the window the average daily burn is computed over.
	BurnWindowDays int
	// DefaultDailyBurn is used when there are no expense transactions at all,
	// so the projection never divides into a zero corpus.
	DefaultDailyBurn float64
	// PaycheckAmount is the assumed biweekly income event.
	PaycheckAmount float64
	// PaycheckCadenceDays is the interval between income events.
	PaycheckCadenceDays int
}

func (o ForecastOptions) withDefaults() ForecastOptions {
	if o.Days <= 0 {
		o.Days = 30
	}
	if o.BurnWindowDays <= 0 {
		o.BurnWindowDays = 30
	}
	if o.DefaultDailyBurn <= 0 {
		o.DefaultDailyBurn = 50
	}
	if o.PaycheckCadenceDays <= 0 {
		o.PaycheckCadenceDays = 14
	}
	return o
}

// ForecastPoint is a single day's projected balance.
type ForecastPoint struct {
	Day   int     `json:"day"`
	Value float64 `json:"value"`
}

// ForecastResult is the projected balance series plus the figures the
// narrative display reports alongside it.
type ForecastResult struct {
	Points       []ForecastPoint `json:"points"`
	DailyBurn    float64         `json:"daily_burn"`
	FinalBalance float64         `json:"final_balance"`
}

// Forecast projects the balance forward from the current net worth under a
// deterministic linear decay-plus-biweekly-income model. This is not a
// statistical forecast: no regression, no confidence interval. Point 0 is the
// current net worth exactly; the paycheck bump lands on later days that are a
// multiple of the cadence (14 and 28 on the default horizon).
func Forecast(netWorth float64, txs []model.Transaction, opts ForecastOptions) ForecastResult {
	opts = opts.withDefaults()

	burn := opts.DefaultDailyBurn
	if total := TotalExpense(txs); total > 0 {
		burn = total / float64(opts.BurnWindowDays)
	}

	points := make([]ForecastPoint, opts.Days)
	for i := range points {
		value := netWorth - float64(i)*burn
		if i > 0 && i%opts.PaycheckCadenceDays == 0 {
			value += opts.PaycheckAmount
		}
		points[i] = ForecastPoint{Day: i, Value: value}
	}

	return ForecastResult{
		Points:       points,
		DailyBurn:    burn,
		FinalBalance: points[len(points)-1].Value,
	}
}
