package mlmodel

import (
	"math"
	"sync"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
)

// DefaultRecommendation is returned while the model is untrained or the
// history is too thin to fit a regression.
const DefaultRecommendation = 12.0

// minTrainingRecords guards against fitting 3 coefficients on fewer
// points than unknowns.
const minTrainingRecords = 4

// Model predicts recommended weekly study hours from the logged study
// history. It is an explicit object passed by handle; retraining and
// prediction may run concurrently from different requests.
type Model struct {
	csvPath string

	mu     sync.RWMutex
	coeffs *[3]float64 // intercept, difficulty, grade
}

func New(csvPath string) *Model {
	return &Model{csvPath: csvPath}
}

// Train refits the regression (ordinary least squares of study hours on
// difficulty and grade) from the history file. A history too small or
// degenerate leaves the model untrained; that is not an error.
func (m *Model) Train() error {
	records, err := m.LoadRecords()
	if err != nil {
		return err
	}

	coeffs, ok := fit(records)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !ok {
		m.coeffs = nil
		config.Logger.Info("study-hours model left untrained, using default recommendation")
		return nil
	}
	m.coeffs = &coeffs
	config.Logger.Infof("study-hours model retrained on %d sessions", len(records))
	return nil
}

// PredictStudyHours recommends weekly study hours for the given
// difficulty (1-10) and target grade (1-10), clamped to the hours the
// user actually has available.
func (m *Model) PredictStudyHours(difficulty, hoursAvailable, targetGrade float64) float64 {
	m.mu.RLock()
	coeffs := m.coeffs
	m.mu.RUnlock()

	hours := DefaultRecommendation
	if coeffs != nil {
		hours = coeffs[0] + coeffs[1]*difficulty + coeffs[2]*targetGrade
	}

	if hours < 1 {
		hours = 1
	}
	if hoursAvailable > 0 && hours > hoursAvailable {
		hours = hoursAvailable
	}
	return math.Round(hours*10) / 10
}

// Trained reports whether a fitted regression is loaded.
func (m *Model) Trained() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.coeffs != nil
}

// fit solves the normal equations for hours = b0 + b1*difficulty +
// b2*grade.
func fit(records []Record) ([3]float64, bool) {
	if len(records) < minTrainingRecords {
		return [3]float64{}, false
	}

	var n, sd, sg, sdd, sdg, sgg, sy, sdy, sgy float64
	for _, r := range records {
		n++
		sd += r.Difficulty
		sg += r.Grade
		sdd += r.Difficulty * r.Difficulty
		sdg += r.Difficulty * r.Grade
		sgg += r.Grade * r.Grade
		sy += r.Hours
		sdy += r.Difficulty * r.Hours
		sgy += r.Grade * r.Hours
	}

	a := [3][3]float64{
		{n, sd, sg},
		{sd, sdd, sdg},
		{sg, sdg, sgg},
	}
	b := [3]float64{sy, sdy, sgy}
	return solve3(a, b)
}

// solve3 does Gaussian elimination with partial pivoting on a 3x3
// system. A near-singular matrix (e.g. every session has the same
// difficulty) reports failure instead of exploding.
func solve3(a [3][3]float64, b [3]float64) ([3]float64, bool) {
	const eps = 1e-9

	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < eps {
			return [3]float64{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < 3; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k < 3; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	var x [3]float64
	for row := 2; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < 3; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, true
}
