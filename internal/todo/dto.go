// dto.go
package todo

type CreateTodoInput struct {
	Title string `json:"title"`
}

// Completed is a pointer so "field absent" and "completed: false" stay
// distinguishable.
type UpdateTodoInput struct {
	ID        string `json:"id"`
	Completed *bool  `json:"completed"`
}

type DeleteTodoInput struct {
	ID string `json:"id"`
}
