package entity

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`

	Stats Stats `json:"stats"`
}

// Stats are the per-user aggregate outcome counters.
type Stats struct {
	Won            int `json:"won"`
	Lost           int `json:"lost"`
	WonBySurrender int `json:"won_by_surrender"`
	Draws          int `json:"draws"`
	Surrendered    int `json:"surrendered"`
}

// StatsDelta is a set of counter increments applied at a terminal
// transition.
type StatsDelta struct {
	Won            int
	Lost           int
	WonBySurrender int
	Draws          int
	Surrendered    int
}
