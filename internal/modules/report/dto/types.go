package dto

type WeeklyInput struct {
	WeekKey string
}

type WeekOption struct {
	WeekKey   string
	Label     string
	IsCurrent bool
}

type WeeklyOutput struct {
	WeekKey        string
	Label          string
	IsCurrent      bool
	Weeks          []WeekOption
	TotalSeconds   int
	TotalTimeText  string
	TotalChores    int
	TotalXP        int
	TotalCoins     int
	Sessions       int
	AverageSeconds float64
	AverageText    string
	TopLabel       string
	TopText        string
}

type HistoryInput struct {
	Limit int
}

type ExportInput struct {
	Dir string
}

type ExportOutput struct {
	SessionNotes []string
	WeekNotes    []string
}
