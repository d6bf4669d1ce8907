package models

import "testing"

func TestProjectStatusIsValid(t *testing.T) {
	for _, s := range []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold} {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []ProjectStatus{"", "active", "SHIPPED"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskTodo, TaskInProgress, TaskDone} {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []TaskStatus{"", "done", "BLOCKED"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
