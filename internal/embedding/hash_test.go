package embedding

import (
	"context"
	"math"
	"testing"
)

func TestHashEmbedderDeterministic(t *testing.T) {
	e := NewHashEmbedder(64)
	a, err := e.Embed(context.Background(), "the defendant breached the contract")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	b, err := e.Embed(context.Background(), "the defendant breached the contract")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same text must embed identically")
		}
	}
}

func TestHashEmbedderUnitNorm(t *testing.T) {
	e := NewHashEmbedder(128)
	v, err := e.Embed(context.Background(), "summary judgment granted")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if math.Abs(sum-1) > 1e-4 {
		t.Errorf("norm^2 = %f, want 1", sum)
	}
}

func TestHashEmbedderEmptyText(t *testing.T) {
	e := NewHashEmbedder(16)
	v, err := e.Embed(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if v[0] != 1 {
		t.Errorf("empty text sentinel: got %v", v[:4])
	}
}

func TestHashEmbedderDimensions(t *testing.T) {
	if got := NewHashEmbedder(0).Dimensions(); got != 384 {
		t.Errorf("default dimensions: got %d", got)
	}
	if got := NewHashEmbedder(32).Dimensions(); got != 32 {
		t.Errorf("dimensions: got %d", got)
	}
}

func TestEmbedBatch(t *testing.T) {
	e := NewHashEmbedder(32)
	out, err := e.EmbedBatch(context.Background(), []string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d vectors", len(out))
	}
}

func TestHashStringStable(t *testing.T) {
	if HashString("breach") != HashString("breach") {
		t.Error("hash must be stable")
	}
	if HashString("breach") == HashString("breech") {
		t.Error("different words should differ")
	}
}
