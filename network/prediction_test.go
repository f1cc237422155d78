package network

import (
	"testing"

	"github.com/carllapierre/foodfight/shared/gamemath"
	"github.com/carllapierre/foodfight/shared/messages"
)

func TestPredictionBufferStoreAndGet(t *testing.T) {
	t.Parallel()

	pb := &PredictionBuffer{}

	pb.Store(messages.NewPlayerInput(5), gamemath.Vec3{X: 1, Y: 2, Z: 3})

	record, ok := pb.Get(5)
	if !ok {
		t.Fatalf("expected record for seq 5")
	}
	if record.Predicted.X != 1 || record.Predicted.Z != 3 {
		t.Fatalf("unexpected predicted position: %+v", record.Predicted)
	}
	if pb.NextSeq() != 6 {
		t.Fatalf("NextSeq = %d, want 6", pb.NextSeq())
	}
}

func TestPredictionBufferOverwrittenSlot(t *testing.T) {
	t.Parallel()

	pb := &PredictionBuffer{}

	pb.Store(messages.NewPlayerInput(1), gamemath.Vec3{})
	// Same ring slot 64 sequences later.
	pb.Store(messages.NewPlayerInput(1+predictionBufferSize), gamemath.Vec3{X: 9})

	if _, ok := pb.Get(1); ok {
		t.Fatalf("seq 1 should be gone after its slot was overwritten")
	}
	if record, ok := pb.Get(1 + predictionBufferSize); !ok || record.Predicted.X != 9 {
		t.Fatalf("newer record missing or wrong: %+v ok=%v", record, ok)
	}
}

func TestGetUnacknowledged(t *testing.T) {
	t.Parallel()

	pb := &PredictionBuffer{}
	for seq := uint32(1); seq <= 10; seq++ {
		pb.Store(messages.NewPlayerInput(seq), gamemath.Vec3{X: float64(seq)})
	}

	pending := pb.GetUnacknowledged(7)
	if len(pending) != 3 {
		t.Fatalf("expected 3 unacked inputs, got %d", len(pending))
	}
	if pending[0].Input.Sequence != 8 || pending[2].Input.Sequence != 10 {
		t.Fatalf("unexpected sequence range: %d..%d", pending[0].Input.Sequence, pending[2].Input.Sequence)
	}
}
