package estimator

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/covid19-estimator-api/schema"
)

// projections are computed in float64 for the rate steps, so infections must stay
// within the range where every integer is exactly representable
const maxExactInfections = 1 << 53

// every projected figure has to fit an int64
const maxProjection = float64(1 << 63)

var (
	ErrInvalidTimeToElapse     = fmt.Errorf("time to elapse must be a positive number of days")
	ErrNegativeReportedCases   = fmt.Errorf("reported cases must not be negative")
	ErrNegativeHospitalBeds    = fmt.Errorf("total hospital beds must not be negative")
	ErrInvalidIncomePopulation = fmt.Errorf("average daily income population must be between 0 and 1")
	ErrNegativeIncome          = fmt.Errorf("average daily income must not be negative")
	ErrProjectionOverflow      = fmt.Errorf("projected figures are out of range")
)

// Validate rejects input that Estimate cannot turn into a meaningful projection.
func Validate(input schema.Input) error {
	t := input.TimeToElapse
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return ErrInvalidTimeToElapse
	}

	if input.ReportedCases < 0 {
		return ErrNegativeReportedCases
	}

	if input.TotalHospitalBeds < 0 {
		return ErrNegativeHospitalBeds
	}

	p := input.Region.AvgDailyIncomePopulation
	if math.IsNaN(p) || p < 0 || p > 1 {
		return ErrInvalidIncomePopulation
	}

	income := input.Region.AvgDailyIncomeInUSD
	if math.IsNaN(income) || math.IsInf(income, 0) || income < 0 {
		return ErrNegativeIncome
	}

	if t/doublingPeriod >= 54 {
		return ErrProjectionOverflow
	}

	limit := int64(maxExactInfections>>doublings(t)) / severeImpactMultiplier
	if input.ReportedCases > limit {
		return ErrProjectionOverflow
	}

	// the severe scenario has the most infections, so it bounds dollars in flight
	severeInfections := (input.ReportedCases * severeImpactMultiplier) << doublings(t)
	dollars := float64(severeInfections) * p * income / t
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) || dollars >= maxProjection {
		return ErrProjectionOverflow
	}

	return nil
}
