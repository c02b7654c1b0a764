package analytics

import (
	"math"

	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
)

// correlationMetrics fixes the order of the numeric columns in the matrix
var correlationMetrics = []string{"age", "day", "hours_spent", "completion_pct"}

// correlationMatrix computes pairwise Pearson coefficients over the numeric
// columns. A column with zero variance correlates as 0 against everything
// except itself.
func correlationMatrix(rows []entities.Participant) entities.CorrelationMatrix {
	cols := [][]float64{
		column(rows, func(p entities.Participant) float64 { return float64(p.Age) }),
		column(rows, func(p entities.Participant) float64 { return float64(p.Day) }),
		column(rows, func(p entities.Participant) float64 { return p.HoursSpent }),
		column(rows, func(p entities.Participant) float64 { return float64(p.CompletionPct) }),
	}

	n := len(cols)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		for j := range values[i] {
			if i == j {
				values[i][j] = 1
				continue
			}
			values[i][j] = pearson(cols[i], cols[j])
		}
	}

	return entities.CorrelationMatrix{Metrics: correlationMetrics, Values: values}
}

func column(rows []entities.Participant, get func(entities.Participant) float64) []float64 {
	out := make([]float64, len(rows))
	for i, p := range rows {
		out[i] = get(p)
	}
	return out
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
