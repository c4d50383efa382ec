package model

// RegisterRequest is the JSON body accepted by the registration API.
type RegisterRequest struct {
	TeamName     string        `json:"team_name"`
	ManagerName  string        `json:"manager_name"`
	ManagerPhone string        `json:"manager_phone"`
	Players      []RosterEntry `json:"players"`
}

// Draft converts the request into a draft for validation and submission.
func (r *RegisterRequest) Draft() *Draft {
	return &Draft{
		TeamName:     r.TeamName,
		ManagerName:  r.ManagerName,
		ManagerPhone: r.ManagerPhone,
		Roster:       r.Players,
	}
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Team    Team     `json:"team"`
	Players []Player `json:"players"`
}

// TeamDetail bundles a team with its roster for the admin detail view.
type TeamDetail struct {
	Team    Team     `json:"team"`
	Players []Player `json:"players"`
}
