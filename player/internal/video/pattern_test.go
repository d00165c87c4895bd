package video

import (
	"image/color"
	"testing"
)

func TestPatternSize(t *testing.T) {
	p := NewPattern(64, 36, 30)

	w, h := p.Size()
	if w != 64 || h != 36 {
		t.Errorf("Size = %dx%d, want 64x36", w, h)
	}
	if p.FPS() != 30 {
		t.Errorf("FPS = %v, want 30", p.FPS())
	}

	frame, err := p.NextFrame()
	if err != nil {
		t.Fatalf("NextFrame: %v", err)
	}
	if len(frame) != 64*36 {
		t.Errorf("%d pixels, want %d", len(frame), 64*36)
	}
}

func TestPatternAnimates(t *testing.T) {
	p := NewPattern(64, 36, 30)

	first, _ := p.NextFrame()
	snapshot := make([]color.RGBA, len(first))
	copy(snapshot, first)

	// O marcador móvel muda de coluna entre frames distantes
	var moved bool
	for i := 0; i < 30; i++ {
		frame, _ := p.NextFrame()
		for j := range frame {
			if frame[j] != snapshot[j] {
				moved = true
				break
			}
		}
		if moved {
			break
		}
	}
	if !moved {
		t.Error("padrão estático: o marcador deveria se mover entre frames")
	}
}

func TestPatternRewind(t *testing.T) {
	p := NewPattern(64, 36, 30)

	first, _ := p.NextFrame()
	snapshot := make([]color.RGBA, len(first))
	copy(snapshot, first)

	for i := 0; i < 10; i++ {
		p.NextFrame()
	}

	if err := p.Rewind(); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	again, _ := p.NextFrame()
	for j := range again {
		if again[j] != snapshot[j] {
			t.Fatalf("pixel %d difere após rewind", j)
		}
	}
}

func TestPatternClampsDegenerateDimensions(t *testing.T) {
	// Largura 1 dividiria por zero na rampa de cinza
	tests := []struct{ w, h int32 }{
		{1, 1},
		{0, 36},
		{64, 0},
	}

	for _, tt := range tests {
		p := NewPattern(tt.w, tt.h, 30)
		w, h := p.Size()
		if w < 2 || h < 2 {
			t.Errorf("NewPattern(%d, %d): Size = %dx%d, want mínimo 2x2", tt.w, tt.h, w, h)
		}
		if _, err := p.NextFrame(); err != nil {
			t.Errorf("NewPattern(%d, %d): NextFrame: %v", tt.w, tt.h, err)
		}
	}
}

func TestPatternNeverEnds(t *testing.T) {
	p := NewPattern(16, 9, 30)
	for i := 0; i < 200; i++ {
		if _, err := p.NextFrame(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
}
