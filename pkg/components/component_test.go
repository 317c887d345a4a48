package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasGUID(t *testing.T) {
	assert.True(t, (&Component{GUID: "abc"}).HasGUID())
	assert.False(t, (&Component{}).HasGUID())
	assert.False(t, (&Component{GUID: "   "}).HasGUID())
}

func TestFirstLinkAndURLs(t *testing.T) {
	c := &Component{
		Links: map[string]FileMap{
			"https://b.example.com/file.zip": {},
			"https://a.example.com/file.zip": {},
		},
	}

	assert.Equal(t, "https://a.example.com/file.zip", c.FirstLink())
	assert.Equal(t, []string{
		"https://a.example.com/file.zip",
		"https://b.example.com/file.zip",
	}, c.URLs())

	empty := &Component{}
	assert.Equal(t, "", empty.FirstLink())
	assert.Empty(t, empty.URLs())
}

func TestInstructionKey(t *testing.T) {
	tests := []struct {
		name  string
		a, b  *Instruction
		equal bool
	}{
		{
			name:  "case insensitive destination",
			a:     &Instruction{Action: ActionCopy, Destination: "Override"},
			b:     &Instruction{Action: ActionCopy, Destination: "override"},
			equal: true,
		},
		{
			name:  "destination trimmed",
			a:     &Instruction{Action: ActionCopy, Destination: " override "},
			b:     &Instruction{Action: ActionCopy, Destination: "override"},
			equal: true,
		},
		{
			name:  "source not part of key",
			a:     &Instruction{Action: ActionCopy, Source: []string{"a"}, Destination: "override"},
			b:     &Instruction{Action: ActionCopy, Source: []string{"b"}, Destination: "override"},
			equal: true,
		},
		{
			name:  "different action",
			a:     &Instruction{Action: ActionCopy, Destination: "override"},
			b:     &Instruction{Action: ActionMove, Destination: "override"},
			equal: false,
		},
		{
			name:  "different destination",
			a:     &Instruction{Action: ActionCopy, Destination: "override"},
			b:     &Instruction{Action: ActionCopy, Destination: "music"},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.equal {
				assert.Equal(t, tt.a.Key(), tt.b.Key())
			} else {
				assert.NotEqual(t, tt.a.Key(), tt.b.Key())
			}
		})
	}
}

func TestOptionKey(t *testing.T) {
	assert.Equal(t, "hd textures", (&Option{Name: " HD Textures "}).Key())
	assert.Equal(t, (&Option{Name: "HD textures"}).Key(), (&Option{Name: "hd TEXTURES"}).Key())
}
