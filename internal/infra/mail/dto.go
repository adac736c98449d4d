package mail

// DigestEmailData alimenta templates/digest.html.
type DigestEmailData struct {
	TenantName          string
	Date                string
	TotalUrgent         int
	OverdueFollowUps    int
	TodayFollowUps      int
	TodayVisits         int
	LeadsWithoutContact int
	DashboardURL        string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
