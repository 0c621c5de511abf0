package circuit

import (
	"math"
	"testing"
)

func TestBuilderAppendsGates(t *testing.T) {
	qc := New("demo", 3, 0)
	qc.H(0, 1, 2).X(0).CX(0, 1).CCX(0, 1, 2).RY(math.Pi/2, 1)

	if len(qc.Gates) != 7 {
		t.Fatalf("expected 7 gates, got %d", len(qc.Gates))
	}

	cx := qc.Gates[4]
	if cx.Type != "CX" || cx.Control != 0 || cx.Target != 1 {
		t.Errorf("gate 4: expected CX q[0]->q[1], got Type=%s Control=%d Target=%d",
			cx.Type, cx.Control, cx.Target)
	}

	ccx := qc.Gates[5]
	if ccx.Type != "MCX" || len(ccx.Controls) != 2 || ccx.Target != 2 {
		t.Errorf("gate 5: expected MCX with 2 controls on q[2], got %+v", ccx)
	}

	ry := qc.Gates[6]
	if ry.Type != "RY" || len(ry.Params) != 1 || ry.Params[0] != math.Pi/2 {
		t.Errorf("gate 6: expected RY(pi/2), got %+v", ry)
	}
}

func TestMeasureGrowsCbits(t *testing.T) {
	qc := New("m", 2, 0)
	qc.Measure(1, 3)

	if qc.NumCbits != 4 {
		t.Errorf("expected NumCbits 4 after Measure(1,3), got %d", qc.NumCbits)
	}
}

func TestMeasureAll(t *testing.T) {
	qc := New("m", 3, 0)
	qc.H(0).MeasureAll()

	if qc.NumCbits != 3 {
		t.Errorf("expected NumCbits 3, got %d", qc.NumCbits)
	}
	measures := 0
	for _, g := range qc.Gates {
		if g.Type == "MEASURE" {
			measures++
		}
	}
	if measures != 3 {
		t.Errorf("expected 3 MEASURE gates, got %d", measures)
	}
}

func TestEnsureMeasured(t *testing.T) {
	bare := New("bare", 2, 0).H(0)
	prepared := bare.EnsureMeasured()

	if prepared == bare {
		t.Fatal("expected a copy when measurements are added")
	}
	if !prepared.HasMeasurements() {
		t.Error("prepared circuit should have measurements")
	}
	if bare.HasMeasurements() {
		t.Error("original circuit must stay unmeasured")
	}

	already := New("done", 1, 1).H(0).Measure(0, 0)
	if already.EnsureMeasured() != already {
		t.Error("measured circuit should be returned as-is")
	}
}

func TestCopyIsDeep(t *testing.T) {
	qc := New("orig", 2, 2)
	qc.MCX([]int{0}, 1)

	cp := qc.Copy()
	cp.Gates[0].Controls[0] = 99
	cp.H(0)

	if qc.Gates[0].Controls[0] != 0 {
		t.Error("mutating the copy's control slice changed the original")
	}
	if len(qc.Gates) != 1 {
		t.Errorf("appending to the copy grew the original to %d gates", len(qc.Gates))
	}
}

func TestResources(t *testing.T) {
	qc := New("bell", 2, 2)
	qc.H(0).CX(0, 1).MeasureAll()

	res := qc.Resources()
	if res.NumQubits != 2 || res.NumCbits != 2 {
		t.Errorf("counts: got %d qubits, %d cbits", res.NumQubits, res.NumCbits)
	}
	if res.GateCount != 4 {
		t.Errorf("expected 4 gates, got %d", res.GateCount)
	}
	if res.Depth != 3 {
		t.Errorf("expected depth 3 (H, CX, measure layer), got %d", res.Depth)
	}
	if res.GateTypes["MEASURE"] != 2 || res.GateTypes["H"] != 1 || res.GateTypes["CX"] != 1 {
		t.Errorf("unexpected gate histogram: %v", res.GateTypes)
	}
}

func TestResourcesParallelGatesShareLayer(t *testing.T) {
	qc := New("par", 2, 0)
	qc.H(0).H(1)

	if depth := qc.Resources().Depth; depth != 1 {
		t.Errorf("independent gates should share a layer, got depth %d", depth)
	}
}
