package models

type Member struct {
	Name    string `json:"name"`
	Dept    string `json:"dept"`
	Sem     string `json:"sem"`
	Contact string `json:"contact,omitempty"`
}

// Registration is what actually lands in the spreadsheet: the resolved member
// list plus the fields shared by every row of the submission.
type Registration struct {
	Members     []Member
	Contact     string
	Group       string
	NoOfPlayers int
	PaymentID   string
}
