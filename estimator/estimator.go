// Package estimator projects the spread and the hospital and economic impact of
// COVID-19 in a region from its reported cases.
//
// Two scenarios are computed from the same input: the impact scenario assumes ten
// real infections per reported case, the severe impact scenario assumes fifty.
package estimator

import (
	"math"

	"github.com/bitmark-inc/covid19-estimator-api/schema"
)

const (
	impactMultiplier       = 10
	severeImpactMultiplier = 50

	// infections double every doublingPeriod days
	doublingPeriod = 3

	severeCasesRate   = 0.15
	availableBedsRate = 0.35
	icuRate           = 0.05
	ventilatorsRate   = 0.02
)

type Estimator interface {
	Validate(input schema.Input) error
	Estimate(input schema.Input) schema.Estimate
}

type estimator struct{}

// New returns the stateless estimator. It is safe for concurrent use.
func New() Estimator {
	return estimator{}
}

func (estimator) Validate(input schema.Input) error {
	return Validate(input)
}

func (estimator) Estimate(input schema.Input) schema.Estimate {
	return Estimate(input)
}

// Estimate computes both impact scenarios for a validated input.
func Estimate(input schema.Input) schema.Estimate {
	return schema.Estimate{
		Data: input,
		Estimate: schema.Impacts{
			Impact:       projectImpact(input, impactMultiplier),
			SevereImpact: projectImpact(input, severeImpactMultiplier),
		},
	}
}

// GrowthFactor is 2 to the power of the complete doubling periods within days.
// It is 1 below one period and saturates at math.MaxInt64 from 63 periods on.
func GrowthFactor(days float64) int64 {
	periods := math.Trunc(days / doublingPeriod)
	switch {
	case !(periods > 0):
		return 1
	case periods >= 63:
		return math.MaxInt64
	}
	return 1 << uint(periods)
}

func doublings(days float64) uint {
	return uint(math.Trunc(days / doublingPeriod))
}

func projectImpact(input schema.Input, multiplier int64) schema.ImpactBlock {
	currentlyInfected := input.ReportedCases * multiplier
	infections := currentlyInfected * GrowthFactor(input.TimeToElapse)
	severeCases := truncate(float64(infections) * severeCasesRate)

	return schema.ImpactBlock{
		CurrentlyInfected:                  currentlyInfected,
		InfectionsByRequestedTime:          infections,
		SevereCasesByRequestedTime:         severeCases,
		HospitalBedsByRequestedTime:        truncate(float64(input.TotalHospitalBeds)*availableBedsRate - float64(severeCases)),
		CasesForICUByRequestedTime:         truncate(float64(infections) * icuRate),
		CasesForVentilatorsByRequestedTime: truncate(float64(infections) * ventilatorsRate),
		DollarsInFlight: truncate(
			float64(infections) * input.Region.AvgDailyIncomePopulation * input.Region.AvgDailyIncomeInUSD / input.TimeToElapse,
		),
	}
}

// truncate drops the fraction, rounding toward zero for negative values as well
func truncate(v float64) int64 {
	return int64(math.Trunc(v))
}
