package gpu_test

import (
	"testing"

	"github.com/achilleasa/altitude/gpu"
)

type releaseRecorder struct {
	id    int
	order *[]int
}

func (r releaseRecorder) Release() {
	*r.order = append(*r.order, r.id)
}

func TestResourcesReleaseOrder(t *testing.T) {
	var order []int
	var res gpu.Resources
	for i := 0; i < 3; i++ {
		res.Track(releaseRecorder{i, &order})
	}
	if res.Len() != 3 {
		t.Fatalf("expected 3 tracked resources; got %d", res.Len())
	}

	res.Release()
	res.Release()

	exp := []int{2, 1, 0}
	if len(order) != len(exp) {
		t.Fatalf("expected %d releases; got %v", len(exp), order)
	}
	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected reverse release order %v; got %v", exp, order)
		}
	}

	// Tracking after release frees the resource right away
	res.Track(releaseRecorder{9, &order})
	if order[len(order)-1] != 9 {
		t.Fatal("expected late resource to be released immediately")
	}
}
