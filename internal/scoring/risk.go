package scoring

import "math"

// Linear at-risk weights.
const (
	riskIntercept        = 2.5
	riskWeightGPA        = -1.2
	riskWeightDifficulty = 0.8
	riskWeightAttendance = -0.02 // applied to attendance/100
	riskWeightDisability = 0.4
	riskWeightCredits    = 0.1

	riskThreshold = 0.5
	riskRuleCount = 5
)

// RiskEstimate is the output of one at-risk estimator, or of the ensemble.
type RiskEstimate struct {
	Probability float64 `json:"probability"`
	AtRisk      bool    `json:"atRisk"`
}

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

func LinearRisk(f FeatureRecord) RiskEstimate {
	z := riskIntercept +
		riskWeightGPA*f.GPA +
		riskWeightDifficulty*float64(f.CourseDifficulty) +
		riskWeightAttendance*(f.AttendanceRate/100) +
		riskWeightDisability*boolf(f.HasDisability) +
		riskWeightCredits*float64(f.Credits)
	p := sigmoid(z)
	return RiskEstimate{Probability: p, AtRisk: p > riskThreshold}
}

// RiskVotes returns how many of the five risk rules fire.
func RiskVotes(f FeatureRecord) int {
	hard := f.CourseDifficulty >= 4
	rules := [riskRuleCount]bool{
		f.GPA < 2.5,
		hard && f.GPA < 3.0,
		f.AttendanceRate < 80,
		f.HasDisability && hard,
		f.GPA < 2.0 || (hard && f.GPA < 2.5),
	}
	votes := 0
	for _, fired := range rules {
		if fired {
			votes++
		}
	}
	return votes
}

func RuleVoteRisk(f FeatureRecord) RiskEstimate {
	p := float64(RiskVotes(f)) / riskRuleCount
	return RiskEstimate{Probability: p, AtRisk: p > riskThreshold}
}

// PredictRisk ensembles both estimators. The flag is the OR of the two flags
// while the probability is their mean, so AtRisk can be true with a mean
// probability under 0.5.
func PredictRisk(f FeatureRecord) RiskEstimate {
	lin := LinearRisk(f)
	rule := RuleVoteRisk(f)
	return RiskEstimate{
		Probability: clampUnit((lin.Probability + rule.Probability) / 2),
		AtRisk:      lin.AtRisk || rule.AtRisk,
	}
}
