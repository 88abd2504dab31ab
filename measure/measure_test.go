package measure

import "testing"

func TestSystemString(t *testing.T) {
	if Metric.String() != "Metric" {
		t.Errorf("Metric.String() = %q", Metric.String())
	}
	if Imperial.String() != "Imperial" {
		t.Errorf("Imperial.String() = %q", Imperial.String())
	}
}

// Re-tagging a quantity must never touch the canonical value.
func TestConversionPreservesValue(t *testing.T) {
	values := []uint64{0, 1, 250, 28_349, 123_456, 1_000_000, 1<<64 - 1}
	for _, v := range values {
		w := NewWeight(v)
		if got := w.AsImperial().Get(); got != v {
			t.Errorf("Weight(%d).AsImperial().Get() = %d", v, got)
		}
		if got := w.AsImperial().AsMetric().Get(); got != v {
			t.Errorf("Weight(%d) metric round trip = %d", v, got)
		}
		vol := NewVolume(v)
		if got := vol.AsImperial().Get(); got != v {
			t.Errorf("Volume(%d).AsImperial().Get() = %d", v, got)
		}
		if got := vol.AsImperial().AsMetric().Get(); got != v {
			t.Errorf("Volume(%d) metric round trip = %d", v, got)
		}
	}
}

func TestConversionRetags(t *testing.T) {
	w := NewWeight(500_000)
	if w.System() != Metric {
		t.Fatalf("NewWeight tagged %v, want Metric", w.System())
	}
	if w.AsImperial().System() != Imperial {
		t.Error("AsImperial did not re-tag the weight")
	}
	if w.AsImperial().AsMetric().System() != Metric {
		t.Error("AsMetric did not re-tag the weight")
	}
	if w.String() == w.AsImperial().String() {
		t.Error("display system has no effect on rendering")
	}
}

func TestConvert(t *testing.T) {
	q := Convert(NewWeight(42), Imperial)
	w, ok := q.(Weight)
	if !ok {
		t.Fatalf("Convert(Weight) = %T", q)
	}
	if w.System() != Imperial || w.Get() != 42 {
		t.Errorf("Convert(Weight(42), Imperial) = %d %v", w.Get(), w.System())
	}

	q = Convert(NewVolume(42).AsImperial(), Metric)
	v, ok := q.(Volume)
	if !ok {
		t.Fatalf("Convert(Volume) = %T", q)
	}
	if v.System() != Metric || v.Get() != 42 {
		t.Errorf("Convert(Volume(42), Metric) = %d %v", v.Get(), v.System())
	}

	if Convert(nil, Imperial) != nil {
		t.Error("Convert(nil) should stay nil")
	}
}
