package domain

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel() // Enable parallel execution
	testCases := []struct {
		name      string
		systolic  int
		diastolic int
		expected  Category
	}{
		{name: "both low is normal", systolic: 110, diastolic: 70, expected: CategoryNormal},
		{name: "just under elevated is normal", systolic: 119, diastolic: 79, expected: CategoryNormal},
		{name: "systolic at elevated threshold", systolic: 120, diastolic: 70, expected: CategoryElevated},
		{name: "diastolic at elevated threshold", systolic: 110, diastolic: 80, expected: CategoryElevated},
		{name: "just under high is elevated", systolic: 139, diastolic: 89, expected: CategoryElevated},
		{name: "systolic at high threshold", systolic: 140, diastolic: 70, expected: CategoryHigh},
		{name: "diastolic triggers high regardless of systolic", systolic: 90, diastolic: 95, expected: CategoryHigh},
		{name: "both high", systolic: 180, diastolic: 110, expected: CategoryHigh},
		{name: "systolic elevated only", systolic: 139, diastolic: 70, expected: CategoryElevated},
		// Total over all integers: even nonsense inputs classify.
		{name: "zero input is normal", systolic: 0, diastolic: 0, expected: CategoryNormal},
		{name: "negative input is normal", systolic: -10, diastolic: -10, expected: CategoryNormal},
		{name: "huge input is high", systolic: 100000, diastolic: 0, expected: CategoryHigh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.systolic, tc.diastolic)
			if got != tc.expected {
				t.Errorf("Classify(%d, %d) = %v, expected %v", tc.systolic, tc.diastolic, got, tc.expected)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel() // Enable parallel execution
	// Safe to call repeatedly with identical results.
	for i := 0; i < 10; i++ {
		if got := Classify(125, 75); got != CategoryElevated {
			t.Fatalf("Expected elevated on call %d, got %v", i, got)
		}
	}
}

func TestCategoryInfo(t *testing.T) {
	t.Parallel() // Enable parallel execution
	testCases := []struct {
		category Category
		color    string
		title    string
	}{
		{category: CategoryHigh, color: "#ef4444", title: "High Blood Pressure"},
		{category: CategoryElevated, color: "#f59e0b", title: "Elevated Blood Pressure"},
		{category: CategoryNormal, color: "#22c55e", title: "Normal Blood Pressure"},
	}

	for _, tc := range testCases {
		info := tc.category.Info()
		if info.Color != tc.color {
			t.Errorf("Expected %s color %s, got %s", tc.category, tc.color, info.Color)
		}
		if info.Title != tc.title {
			t.Errorf("Expected %s title %q, got %q", tc.category, tc.title, info.Title)
		}
		if info.Description == "" {
			t.Errorf("Expected %s to carry a description", tc.category)
		}
	}
}

func TestClassifyReading(t *testing.T) {
	t.Parallel() // Enable parallel execution
	reading := Reading{Systolic: 150, Diastolic: 85}
	if got := ClassifyReading(reading); got != CategoryHigh {
		t.Errorf("Expected high, got %v", got)
	}
}
