package scale

import (
	"math"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

// Horizontal domain padding around the data extent.
const (
	XMinFactor = 0.8
	XMaxFactor = 1.2
)

// Extent returns the minimum and maximum of value over records, skipping NaN.
// ok is false when no record has a number.
func Extent(records []models.StateRecord, value func(models.StateRecord) float64) (lo, hi float64, ok bool) {
	for _, r := range records {
		v := value(r)
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	return
}

// X builds the horizontal scale for field: [min*0.8, max*1.2] onto [0, width].
func X(records []models.StateRecord, field models.Field, width float64) Linear {
	lo, hi, ok := Extent(records, func(r models.StateRecord) float64 { return r.Value(field) })
	if !ok {
		return New([2]float64{0, 1}, [2]float64{0, width})
	}
	return New([2]float64{lo * XMinFactor, hi * XMaxFactor}, [2]float64{0, width})
}

// Y builds the vertical scale: [0, max(cases)] onto [height, 0], so larger
// values plot higher.
func Y(records []models.StateRecord, height float64) Linear {
	_, hi, ok := Extent(records, func(r models.StateRecord) float64 { return r.NewWeeklyCasesPer100k })
	if !ok {
		return New([2]float64{0, 1}, [2]float64{height, 0})
	}
	return New([2]float64{0, hi}, [2]float64{height, 0})
}
