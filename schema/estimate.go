package schema

type Region struct {
	Name                     string  `json:"name"`
	AvgDailyIncomePopulation float64 `json:"avgDailyIncomePopulation"`
	AvgDailyIncomeInUSD      float64 `json:"avgDailyIncomeInUSD"`
}

// Input is the regional data an estimate is computed from
type Input struct {
	Region            Region  `json:"region"`
	ReportedCases     int64   `json:"reportedCases"`
	TimeToElapse      float64 `json:"timeToElapse"`
	TotalHospitalBeds int64   `json:"totalHospitalBeds"`
}

type ImpactBlock struct {
	CurrentlyInfected                  int64 `json:"currentlyInfected"`
	InfectionsByRequestedTime          int64 `json:"infectionsByRequestedTime"`
	SevereCasesByRequestedTime         int64 `json:"severeCasesByRequestedTime"`
	HospitalBedsByRequestedTime        int64 `json:"hospitalBedsByRequestedTime"`
	CasesForICUByRequestedTime         int64 `json:"casesForICUByRequestedTime"`
	CasesForVentilatorsByRequestedTime int64 `json:"casesForVentilatorsByRequestedTime"`
	DollarsInFlight                    int64 `json:"dollarsInFlight"`
}

type Impacts struct {
	Impact       ImpactBlock `json:"impact"`
	SevereImpact ImpactBlock `json:"severeImpact"`
}

// Estimate echoes the input next to the projections computed from it
type Estimate struct {
	Data     Input   `json:"data"`
	Estimate Impacts `json:"estimate"`
}
