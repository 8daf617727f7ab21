package entity

// Course is one row of the college_courses table. Name and Professor are
// stored upper-cased.
type Course struct {
	Code      int     `json:"codigo"`
	Name      string  `json:"nome"`
	Workload  float64 `json:"carga"`
	Professor string  `json:"professor"`
}
