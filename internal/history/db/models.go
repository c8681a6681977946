package db

type Lookup struct {
	ID       int64
	Time     int64
	Kind     string
	Query    string
	Name     string
	Username string
	PageUrl  string
	Outcome  string
}
