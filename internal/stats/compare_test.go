package stats_test

import (
	"reflect"
	"testing"

	"github.com/menulens/menulens-cli/internal/stats"
)

func TestCompareIntersectionAndValues(t *testing.T) {
	food := loadFixture(t, "food", ",Calories,Fat,Fiber\nA,100,10,2\nB,300,20,4\n")
	drinks := loadFixture(t, "drinks", ",Calories,Fat,Sodium\nC,50,0,10\nD,150,2,20\n")

	report, err := stats.Compare(food, drinks)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	// Fiber and Sodium are not shared; Item is not numeric.
	want := []string{"Calories", "Fat"}
	if !reflect.DeepEqual(report.Columns, want) {
		t.Fatalf("columns = %v, want %v", report.Columns, want)
	}
	pair := report.Stats["Calories"]
	if !almostEqual(pair.Left.Mean, 200) {
		t.Errorf("food calories mean = %v, want 200", pair.Left.Mean)
	}
	if !almostEqual(pair.Right.Mean, 100) {
		t.Errorf("drinks calories mean = %v, want 100", pair.Right.Mean)
	}
}

func TestCompareSymmetric(t *testing.T) {
	food := loadFixture(t, "food", ",Calories,Fat\nA,100,10\nB,300,20\n")
	drinks := loadFixture(t, "drinks", ",Calories,Fat\nC,50,0\nD,150,2\n")

	fwd, err := stats.Compare(food, drinks)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	rev, err := stats.Compare(drinks, food)
	if err != nil {
		t.Fatalf("compare reversed: %v", err)
	}
	if !reflect.DeepEqual(fwd.Columns, rev.Columns) {
		t.Fatalf("column set changed under swap: %v vs %v", fwd.Columns, rev.Columns)
	}
	if fwd.Left != rev.Right || fwd.Right != rev.Left {
		t.Fatalf("sides did not swap: %s/%s vs %s/%s", fwd.Left, fwd.Right, rev.Left, rev.Right)
	}
	for _, col := range fwd.Columns {
		if fwd.Stats[col].Left != rev.Stats[col].Right || fwd.Stats[col].Right != rev.Stats[col].Left {
			t.Errorf("stats pair for %s not mirrored", col)
		}
	}
}

func TestCompareNilDataset(t *testing.T) {
	food := loadFixture(t, "food", ",Calories\nA,100\n")
	if _, err := stats.Compare(food, nil); err == nil {
		t.Fatal("expected error for nil dataset")
	}
}
