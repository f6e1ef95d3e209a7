// Package scoring holds the fixed-coefficient estimators behind course
// recommendations and performance predictions.
//
// Everything here is a pure function over a FeatureRecord value. There is no
// fitted state: the coefficients, thresholds and leaf values are constants and
// must stay exactly as written for output compatibility.
//
// Estimators come in pairs and are blended into an ensemble:
//
//   - at-risk: LinearRisk (logistic over a weighted sum) and RuleVoteRisk
//     (five boolean votes), combined by PredictRisk
//   - recommendation: SimilarityScore and TreeScore, combined by Recommend
//   - grade point: five small adjustments to the prior average, combined by
//     PredictGrade
package scoring
