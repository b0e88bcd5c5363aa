package dto

type AddInput struct {
	Title    string
	Target   int
	Deadline string
}

type ProgressInput struct {
	ID      string
	Current int
}

type GoalOutput struct {
	ID       string
	Title    string
	Current  int
	Target   int
	Deadline string
	Percent  int
}
