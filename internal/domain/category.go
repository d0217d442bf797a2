package domain

// Category is the clinical-risk band derived from a systolic/diastolic pair.
type Category string

const (
	// CategoryNormal indicates systolic < 120 and diastolic < 80.
	CategoryNormal Category = "normal"

	// CategoryElevated indicates systolic 120-139 or diastolic 80-89.
	CategoryElevated Category = "elevated"

	// CategoryHigh indicates systolic >= 140 or diastolic >= 90.
	CategoryHigh Category = "high"
)

// CategoryInfo carries the fixed presentation attributes of a category.
type CategoryInfo struct {
	Category    Category `json:"category"`
	Color       string   `json:"color"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

var categoryInfos = map[Category]CategoryInfo{
	CategoryHigh: {
		Category:    CategoryHigh,
		Color:       "#ef4444",
		Title:       "High Blood Pressure",
		Description: "Systolic ≥ 140 or Diastolic ≥ 90. Consider consulting with a healthcare professional.",
	},
	CategoryElevated: {
		Category:    CategoryElevated,
		Color:       "#f59e0b",
		Title:       "Elevated Blood Pressure",
		Description: "Systolic 120-139 or Diastolic 80-89. Consider lifestyle changes to lower your blood pressure.",
	},
	CategoryNormal: {
		Category:    CategoryNormal,
		Color:       "#22c55e",
		Title:       "Normal Blood Pressure",
		Description: "Systolic < 120 and Diastolic < 80. Keep up the good work!",
	},
}

// Classify maps a systolic/diastolic pair to its risk category.
// Rules are evaluated in precedence order; first match wins.
// This is a pure, total function: defined for all integer inputs,
// side-effect-free and safe to call concurrently.
func Classify(systolic, diastolic int) Category {
	if systolic >= 140 || diastolic >= 90 {
		return CategoryHigh
	}
	if systolic >= 120 || diastolic >= 80 {
		return CategoryElevated
	}
	return CategoryNormal
}

// Info returns the fixed display color, title and description for the category.
func (c Category) Info() CategoryInfo {
	return categoryInfos[c]
}

// ClassifyReading is a convenience wrapper classifying a whole reading.
func ClassifyReading(r Reading) Category {
	return Classify(r.Systolic, r.Diastolic)
}
