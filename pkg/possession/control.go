package possession

//TeamControl returns, per frame, the team of the player holding the ball, or NoTeam
func TeamControl(seq Sequence, assignment TeamAssignment) []int {
	control := make([]int, len(seq))
	for i, holder := range seq {
		control[i] = NoTeam
		if holder == NoPlayer {
			continue
		}
		control[i] = assignment.teamOf(i, holder)
	}
	return control
}

//ControlShare returns the fraction of frames [0, upTo] each team controlled the ball
func ControlShare(control []int, upTo int) (team1, team2 float64) {
	if upTo >= len(control) {
		upTo = len(control) - 1
	}
	if upTo < 0 {
		return 0, 0
	}

	var c1, c2 int
	for _, team := range control[:upTo+1] {
		switch team {
		case 1:
			c1++
		case 2:
			c2++
		}
	}

	total := float64(upTo + 1)
	return float64(c1) / total, float64(c2) / total
}

//Counts holds per team pass and interception totals
type Counts struct {
	Team1Passes        int `json:"team1_passes"`
	Team2Passes        int `json:"team2_passes"`
	Team1Interceptions int `json:"team1_interceptions"`
	Team2Interceptions int `json:"team2_interceptions"`
}

//EventCounts sums passes and interceptions per team over frames [0, upTo]
func EventCounts(passes, interceptions Events, upTo int) Counts {
	var c Counts
	for i := 0; i <= upTo && i < len(passes); i++ {
		switch passes[i] {
		case 1:
			c.Team1Passes++
		case 2:
			c.Team2Passes++
		}
	}
	for i := 0; i <= upTo && i < len(interceptions); i++ {
		switch interceptions[i] {
		case 1:
			c.Team1Interceptions++
		case 2:
			c.Team2Interceptions++
		}
	}
	return c
}
