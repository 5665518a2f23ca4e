package todo

// Todo is the only stored entity. ID is the table's partition key and is
// assigned server-side at creation; Title is immutable after creation.
type Todo struct {
	ID        string `json:"id" dynamodbav:"id"`
	Title     string `json:"title" dynamodbav:"title"`
	Completed bool   `json:"completed" dynamodbav:"completed"`
}
