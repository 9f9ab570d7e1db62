package models

// Course is an immutable catalog entry identified by its code.
type Course struct {
	Code  string `json:"code" yaml:"code"`
	Title string `json:"title" yaml:"title"`
}

// String renders the course the way selection lists show it.
func (c Course) String() string {
	return c.Code + " — " + c.Title
}
