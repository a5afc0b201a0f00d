package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Name: "write draft", Status: StatusDone},
		{ID: 2, Name: "review draft", Status: StatusToDo},
		{ID: 3, Name: "publish", Status: StatusToDo},
		{ID: 4, Name: "collect feedback", Status: StatusInProgress},
	}
}

func collect(tasks []Task, status Status) []uint {
	var ids []uint
	for task := range FilterTasksByStatus(tasks, status) {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestFilterTasksByStatus(t *testing.T) {
	tasks := sampleTasks()

	assert.Equal(t, []uint{2, 3}, collect(tasks, StatusToDo))
	assert.Equal(t, []uint{4}, collect(tasks, StatusInProgress))
	assert.Equal(t, []uint{1}, collect(tasks, StatusDone))
	assert.Empty(t, collect(nil, StatusToDo))
}

func TestFilterTasksByStatusDoesNotMutate(t *testing.T) {
	tasks := sampleTasks()
	_ = collect(tasks, StatusToDo)
	assert.Equal(t, sampleTasks(), tasks)
}

func TestFilterTasksByStatusRestartable(t *testing.T) {
	seq := FilterTasksByStatus(sampleTasks(), StatusToDo)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 2, first)
	assert.Equal(t, first, second)
}

func TestFilterTasksByStatusStopsEarly(t *testing.T) {
	var got []uint
	for task := range FilterTasksByStatus(sampleTasks(), StatusToDo) {
		got = append(got, task.ID)
		break
	}
	assert.Equal(t, []uint{2}, got)
}
