package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"backgroundColor", "background-color"},
		{"color", "color"},
		{"background-color", "background-color"},
		{"Background-Color", "background-color"},
		{"WebkitTransform", "-webkit-transform"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"--accentColor", "--accentColor"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Kebab(tt.in), "Kebab(%q)", tt.in)
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"background-color", "backgroundColor"},
		{"color", "color"},
		{"-webkit-transform", "WebkitTransform"},
		{"--gap", "--gap"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Camel(tt.in), "Camel(%q)", tt.in)
	}
}

func TestIsKnownProperty(t *testing.T) {
	assert.True(t, IsKnownProperty("display"))
	assert.True(t, IsKnownProperty("backgroundColor"))
	assert.True(t, IsKnownProperty("justify-content"))
	assert.False(t, IsKnownProperty("dispaly"))
	assert.False(t, IsKnownProperty("WebkitTransform"))
	assert.False(t, IsKnownProperty("--accent"))
	assert.True(t, IsCustomProperty("--accent"))
	assert.False(t, IsCustomProperty("--"))
}

func TestIsInherited(t *testing.T) {
	assert.True(t, IsInherited("color"))
	assert.True(t, IsInherited("--accent"))
	assert.False(t, IsInherited("display"))
	assert.False(t, IsInherited("unknown"))
}
