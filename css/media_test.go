package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateMedia(t *testing.T) {
	desktop := Viewport{Width: 1280, Height: 800}
	phone := Viewport{Width: 375, Height: 812}

	tests := []struct {
		query string
		vp    Viewport
		want  bool
	}{
		{"", desktop, true},
		{"all", desktop, true},
		{"screen", phone, true},
		{"print", desktop, false},
		{"(min-width: 640px)", desktop, true},
		{"(min-width: 640px)", phone, false},
		{"(min-width: 1280px)", desktop, true},
		{"(min-width: 1536px)", desktop, false},
		{"(max-width: 400px)", phone, true},
		{"(max-width: 400px)", desktop, false},
		{"screen and (min-width: 768px)", desktop, true},
		{"screen and (min-width: 768px) and (max-width: 1024px)", desktop, false},
		{"only screen and (max-width: 40em)", phone, true},
		{"not screen and (min-width: 640px)", phone, true},
		{"print, (max-width: 400px)", phone, true},
		{"(orientation: portrait)", phone, true},
		{"(orientation: landscape)", phone, false},
		{"(orientation: landscape)", desktop, true},
		{"(min-height: 800px)", desktop, true},
		{"(width: 375px)", phone, true},
		{"(min-width: wide)", desktop, false},
		{"(hover: hover)", desktop, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EvaluateMedia(tt.query, tt.vp), "EvaluateMedia(%q, %v)", tt.query, tt.vp)
	}
}
