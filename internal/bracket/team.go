package bracket

type Team struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Country string `db:"country" json:"country"`
}

type Player struct {
	ID     string  `db:"id" json:"id"`
	Name   string  `db:"name" json:"name"`
	Team   string  `db:"team" json:"team"`
	Rating float64 `db:"rating" json:"rating"`
	KD     float64 `db:"kd" json:"kd"`
}

type News struct {
	ID      string `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Summary string `db:"summary" json:"summary"`
	Date    string `db:"date" json:"date"`
}
