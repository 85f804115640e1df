package repo

import "testing"

func TestInMemoryMovementRepository_GetByProductID(t *testing.T) {
	r := NewInMemoryMovementRepository()
	r.Log(1, -2)
	r.Log(1, 5)
	r.Log(2, 3)

	movements, total, err := r.GetByProductID(1, MovementFilter{})
	if err != nil {
		t.Fatalf("GetByProductID: %v", err)
	}
	if total != 2 || len(movements) != 2 {
		t.Fatalf("expected 2 movements for product 1, got %d (total %d)", len(movements), total)
	}
	if movements[0].Delta != -2 || movements[1].Delta != 5 {
		t.Errorf("unexpected deltas: %+v", movements)
	}
}

func TestInMemoryMovementRepository_OffsetBeyondRange(t *testing.T) {
	r := NewInMemoryMovementRepository()
	r.Log(1, -2)

	offset := 5
	movements, total, err := r.GetByProductID(1, MovementFilter{Offset: &offset})
	if err != nil {
		t.Fatalf("GetByProductID: %v", err)
	}
	if movements == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(movements) != 0 || total != 0 {
		t.Errorf("expected no movements past the end, got %+v (total %d)", movements, total)
	}
}
