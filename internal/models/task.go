package models

import (
	"iter"
	"time"
)

// Task is a unit of work belonging to exactly one Project.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"project_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	Status      Status    `json:"status" gorm:"size:30;default:TO_DO"`
}

// FilterTasksByStatus returns a lazy sequence over the tasks whose status
// equals status, preserving input order. The sequence can be ranged over any
// number of times; tasks is never mutated.
func FilterTasksByStatus(tasks []Task, status Status) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, task := range tasks {
			if task.Status != status {
				continue
			}
			if !yield(task) {
				return
			}
		}
	}
}
