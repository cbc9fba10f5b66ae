package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid19-estimator-api/schema"
)

type validateTestCase struct {
	name     string
	modify   func(*schema.Input)
	expected error
}

func TestValidate(t *testing.T) {
	cases := []validateTestCase{
		{"valid", func(*schema.Input) {}, nil},
		{"zero cases", func(i *schema.Input) { i.ReportedCases = 0 }, nil},
		{"zero beds", func(i *schema.Input) { i.TotalHospitalBeds = 0 }, nil},
		{"fractional days", func(i *schema.Input) { i.TimeToElapse = 0.5 }, nil},
		{"whole population", func(i *schema.Input) { i.Region.AvgDailyIncomePopulation = 1 }, nil},
		{"zero days", func(i *schema.Input) { i.TimeToElapse = 0 }, ErrInvalidTimeToElapse},
		{"negative days", func(i *schema.Input) { i.TimeToElapse = -3 }, ErrInvalidTimeToElapse},
		{"NaN days", func(i *schema.Input) { i.TimeToElapse = math.NaN() }, ErrInvalidTimeToElapse},
		{"infinite days", func(i *schema.Input) { i.TimeToElapse = math.Inf(1) }, ErrInvalidTimeToElapse},
		{"negative cases", func(i *schema.Input) { i.ReportedCases = -1 }, ErrNegativeReportedCases},
		{"negative beds", func(i *schema.Input) { i.TotalHospitalBeds = -10 }, ErrNegativeHospitalBeds},
		{"population above one", func(i *schema.Input) { i.Region.AvgDailyIncomePopulation = 1.2 }, ErrInvalidIncomePopulation},
		{"negative population", func(i *schema.Input) { i.Region.AvgDailyIncomePopulation = -0.1 }, ErrInvalidIncomePopulation},
		{"negative income", func(i *schema.Input) { i.Region.AvgDailyIncomeInUSD = -1 }, ErrNegativeIncome},
		{"too many doublings", func(i *schema.Input) { i.TimeToElapse = 162 }, ErrProjectionOverflow},
		{"too many cases", func(i *schema.Input) { i.ReportedCases = math.MaxInt64 / 2 }, ErrProjectionOverflow},
		{"dollars beyond int64", func(i *schema.Input) {
			i.ReportedCases = 1000000
			i.TimeToElapse = 30
			i.Region.AvgDailyIncomePopulation = 1
			i.Region.AvgDailyIncomeInUSD = 1e13
		}, ErrProjectionOverflow},
		{"infinite dollars", func(i *schema.Input) { i.TimeToElapse = 1e-300 }, ErrProjectionOverflow},
		{"huge income without cases", func(i *schema.Input) {
			i.ReportedCases = 0
			i.Region.AvgDailyIncomeInUSD = 1e300
		}, nil},
		{"huge income without earners", func(i *schema.Input) {
			i.Region.AvgDailyIncomePopulation = 0
			i.Region.AvgDailyIncomeInUSD = 1e300
		}, nil},
	}

	for _, c := range cases {
		input := sampleInput()
		c.modify(&input)
		assert.Equal(t, c.expected, Validate(input), c.name)
	}
}

func TestValidateProjectionLimit(t *testing.T) {
	input := sampleInput()
	input.TimeToElapse = 150 // 50 doublings, 2^3 left before 2^53

	input.ReportedCases = 0
	assert.NoError(t, Validate(input))

	// 50 * 2^50 > 2^53
	input.ReportedCases = 1
	assert.Equal(t, ErrProjectionOverflow, Validate(input))

	input.TimeToElapse = 3
	input.ReportedCases = (1 << 52) / 50
	assert.NoError(t, Validate(input))

	input.ReportedCases++
	assert.Equal(t, ErrProjectionOverflow, Validate(input))
}

func TestValidatedInputHasNonNegativeDollars(t *testing.T) {
	for _, days := range []float64{1e-9, 0.001, 0.5, 1, 3, 30, 90} {
		for _, income := range []float64{0, 1.5, 1e6, 1e9, 1e12} {
			input := sampleInput()
			input.TimeToElapse = days
			input.Region.AvgDailyIncomeInUSD = income
			if Validate(input) != nil {
				continue
			}

			result := Estimate(input)
			assert.GreaterOrEqual(t, result.Estimate.Impact.DollarsInFlight, int64(0), "days %v income %v", days, income)
			assert.GreaterOrEqual(t, result.Estimate.SevereImpact.DollarsInFlight, int64(0), "days %v income %v", days, income)
		}
	}
}
