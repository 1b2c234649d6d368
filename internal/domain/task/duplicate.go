package task

import "strings"

// IsDuplicate reports whether tasks already holds an entry with the same title
// (case-insensitive) and the same due date string.
func IsDuplicate(tasks []Task, title, dueDate string) bool {
	for _, t := range tasks {
		if strings.EqualFold(t.Title, title) && t.DueDate == dueDate {
			return true
		}
	}
	return false
}
