package sparse

import (
	"testing"
)

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	if v := M.Value(3, 4); v != -1 {
		t.Errorf("expected empty matrix to return null value, got %d", v)
	}
	if prev := M.Set(3, 4, 4711); prev != -1 {
		t.Errorf("expected null value as previous entry, got %d", prev)
	}
	M.Set(0, 9, 1)
	M.Set(9, 0, 2)
	M.Set(3, 2, 3)
	if v := M.Value(3, 4); v != 4711 {
		t.Errorf("expected M(3,4) = 4711, got %d", v)
	}
	if v := M.Value(3, 3); v != -1 {
		t.Errorf("expected M(3,3) to be empty, got %d", v)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values in M, have %d", M.ValueCount())
	}
}

func TestMatrixOverwrite(t *testing.T) {
	M := NewIntMatrix(5, 5, DefaultNullValue)
	M.Set(1, 1, 7)
	if prev := M.Set(1, 1, 8); prev != 7 {
		t.Errorf("expected overwrite to return 7, got %d", prev)
	}
	if v := M.Value(1, 1); v != 8 {
		t.Errorf("expected M(1,1) = 8, got %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value in M, have %d", M.ValueCount())
	}
}

func TestMatrixOutOfBounds(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	M.Set(2, 0, 5)
	M.Set(0, -1, 5)
	if M.ValueCount() != 0 {
		t.Errorf("expected out of bounds positions to be ignored")
	}
}

func TestMatrixEachInRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(2, 1, 21)
	M.Set(0, 2, 2)
	M.Set(1, 0, 10)
	M.Set(0, 0, 0)
	var seen []int32
	M.Each(func(i, j int, v int32) {
		if int32(i*10+j) != v {
			t.Errorf("entry (%d,%d) has unexpected value %d", i, j, v)
		}
		seen = append(seen, v)
	})
	expected := []int32{0, 2, 10, 21}
	if len(seen) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(seen))
	}
	for k := range expected {
		if seen[k] != expected[k] {
			t.Errorf("expected entry #%d to be %d, is %d", k, expected[k], seen[k])
		}
	}
}
