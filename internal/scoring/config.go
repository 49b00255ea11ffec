package scoring

// Config collects every tunable constant of the scoring model in one place:
// nutrient band tables, grade cutoffs, the health-score transform and the
// thresholds behind recommendations and condition alerts. Callers that do not
// care use DefaultConfig(); tests pin their own values.
type Config struct {
	// Ascending per-100g band cutoffs for negative points. A value scores one
	// point per cutoff it exceeds, so ten cutoffs give 0-10 points.
	EnergyBandsKcal []float64
	SugarBandsG     []float64
	SatFatBandsG    []float64
	SodiumBandsMg   []float64

	// Ascending band cutoffs for positive points (0-5 each).
	FiberBandsG   []float64
	ProteinBandsG []float64

	// Grade cutoffs on the raw score: raw <= GradeACutoff is A, and so on.
	// Anything above GradeDCutoff is E.
	GradeACutoff int
	GradeBCutoff int
	GradeCCutoff int
	GradeDCutoff int

	// HealthScoreSlope is the k in healthScore = 100 - k*rawScore (clamped to
	// [0,100]). Must be positive so the transform stays monotonic.
	HealthScoreSlope float64

	// Health-score floors for grades in ingredients-only scoring, where no
	// raw score exists. A score at or above the A floor grades A, and so on;
	// below the D floor is E.
	DegradedGradeAFloor int
	DegradedGradeBFloor int
	DegradedGradeCFloor int
	DegradedGradeDFloor int

	// Health-score floors for the safety-level label.
	SafetySafeFloor     int
	SafetyModerateFloor int

	// SatFatWarnPoints is the saturated-fat band, in points, at which the
	// high-saturated-fat warning fires.
	SatFatWarnPoints int

	// Condition-alert thresholds, per 100g.
	DiabetesSugarG        float64
	CholesterolTotalFatG  float64
	CholesterolSatFatG    float64
	HypertensionSodiumMg  float64
}

// DefaultConfig returns the production scoring constants.
func DefaultConfig() Config {
	return Config{
		EnergyBandsKcal: []float64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000},
		SugarBandsG:     []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50},
		SatFatBandsG:    []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
		SodiumBandsMg:   []float64{200, 400, 600, 800, 1000, 1200, 1400, 1600, 1800, 2000},

		FiberBandsG:   []float64{1, 2, 3, 4, 5},
		ProteinBandsG: []float64{2, 4, 6, 8, 10},

		GradeACutoff: -1,
		GradeBCutoff: 2,
		GradeCCutoff: 10,
		GradeDCutoff: 18,

		HealthScoreSlope: 3,

		DegradedGradeAFloor: 80,
		DegradedGradeBFloor: 60,
		DegradedGradeCFloor: 40,
		DegradedGradeDFloor: 20,

		SafetySafeFloor:     70,
		SafetyModerateFloor: 40,

		SatFatWarnPoints: 4,

		DiabetesSugarG:       10,
		CholesterolTotalFatG: 15,
		CholesterolSatFatG:   5,
		HypertensionSodiumMg: 400,
	}
}

// bandPoints counts how many ascending cutoffs the value exceeds.
func bandPoints(v float64, bands []float64) int {
	points := 0
	for _, cutoff := range bands {
		if v > cutoff {
			points++
		}
	}
	return points
}
