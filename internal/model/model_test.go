package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_JSONShape(t *testing.T) {
	p := Project{
		FullName:    "facebook/react",
		Description: "A library for web and native user interfaces.",
		Owner:       Owner{Login: "facebook", AvatarURL: "https://avatars.githubusercontent.com/u/69631?v=4"},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "facebook/react", raw["full_name"])
	assert.Equal(t, p.Description, raw["description"])

	owner, ok := raw["owner"].(map[string]any)
	require.True(t, ok, "owner should be an object")
	assert.Equal(t, "facebook", owner["login"])
	assert.Equal(t, p.Owner.AvatarURL, owner["avatar_url"])
}

func TestProject_Name(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"facebook/react", "react"},
		{"golang/go", "go"},
		{"noslash", "noslash"},
		{"a/b/c", "b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.fullName, func(t *testing.T) {
			assert.Equal(t, tt.want, Project{FullName: tt.fullName}.Name())
		})
	}
}

func TestProject_SameProject(t *testing.T) {
	p := Project{FullName: "Facebook/React"}

	assert.True(t, p.SameProject("facebook/react"))
	assert.True(t, p.SameProject("FACEBOOK/REACT"))
	assert.False(t, p.SameProject("facebook/react-native"))
}

func TestParseDuplicatePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want DuplicatePolicy
	}{
		{"reject", DuplicateReject},
		{"replace", DuplicateReplace},
		{"allow", DuplicateAllow},
		{"", DuplicateReject},
		{"bogus", DuplicateReject},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDuplicatePolicy(tt.in)
			if got != tt.want {
				t.Errorf("ParseDuplicatePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDuplicatePolicy_StringRoundTrip(t *testing.T) {
	for _, p := range []DuplicatePolicy{DuplicateReject, DuplicateReplace, DuplicateAllow} {
		if got := ParseDuplicatePolicy(p.String()); got != p {
			t.Errorf("ParseDuplicatePolicy(%q) = %v, want %v", p.String(), got, p)
		}
	}

	if got := DuplicatePolicy(99).String(); got != "reject" {
		t.Errorf("unknown policy String() = %q, want %q", got, "reject")
	}
}

func TestParsePersistMode(t *testing.T) {
	assert.Equal(t, PersistLog, ParsePersistMode("log"))
	assert.Equal(t, PersistFail, ParsePersistMode("fail"))
	assert.Equal(t, PersistFail, ParsePersistMode(""))
	assert.Equal(t, "log", PersistLog.String())
	assert.Equal(t, "fail", PersistFail.String())
}
