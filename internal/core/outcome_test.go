package core

import (
	"context"
	"testing"

	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeAdd(t *testing.T) {
	stale := react
	stale.Description = "old description"

	tests := []struct {
		name   string
		before []model.Project
		after  []model.Project
		query  string
		want   string
	}{
		{
			name:   "appended uses service name",
			before: []model.Project{project("a/b")},
			after:  []model.Project{project("a/b"), react},
			query:  "FACEBOOK/REACT",
			want:   "Added facebook/react",
		},
		{
			name:   "replaced entry in place",
			before: []model.Project{stale, project("a/b")},
			after:  []model.Project{react, project("a/b")},
			query:  "Facebook/React",
			want:   "Updated facebook/react",
		},
		{
			name:   "replaced with identical data",
			before: []model.Project{project("a/b"), react},
			after:  []model.Project{project("a/b"), react},
			query:  "https://github.com/FACEBOOK/react",
			want:   "Updated facebook/react",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeAdd(tt.before, tt.after, tt.query).String())
		})
	}
}

func TestDescribeAdd_ReplacePolicyThroughCollection(t *testing.T) {
	slot := newMemSlot()
	lookup := newFakeLookup(react)
	c := NewCollection(slot, lookup, WithDuplicatePolicy(model.DuplicateReplace))
	c.Initialize()

	before := c.Projects()
	after, err := c.Add(context.Background(), "facebook/react")
	require.NoError(t, err)
	assert.Equal(t, "Added facebook/react", DescribeAdd(before, after, "facebook/react").String())

	before = after
	after, err = c.Add(context.Background(), "Facebook/React")
	require.NoError(t, err)

	got := DescribeAdd(before, after, "Facebook/React")
	assert.True(t, got.Replaced)
	assert.Equal(t, "Updated facebook/react", got.String())
}

func TestProjects_DoesNotWaitForAdd(t *testing.T) {
	lookup := newFakeLookup(react)
	release := make(chan struct{})
	entered := make(chan struct{})
	lookup.hook = func(string) {
		close(entered)
		<-release
	}

	c := NewCollection(newMemSlot(), lookup)
	c.Initialize()

	done := make(chan error)
	go func() {
		_, err := c.Add(context.Background(), "facebook/react")
		done <- err
	}()

	<-entered
	assert.Empty(t, c.Projects(), "read during an add in progress must not block")

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []model.Project{react}, c.Projects())
}
