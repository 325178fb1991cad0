package service

// RemoteTask is a task as sent to the remote service.
type RemoteTask struct {
	Title     string
	Notes     string
	Completed bool
}

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
