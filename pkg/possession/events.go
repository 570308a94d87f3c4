package possession

//NoTeam marks a frame without an event, or a player whose team is unknown
const NoTeam = -1

//Events holds, per frame, the team id an event is credited to, or NoTeam
type Events []int

//TeamAssignment maps player id to team id (1 or 2), one map per frame
type TeamAssignment []map[int]int

func (a TeamAssignment) teamOf(frame, player int) int {
	if frame < 0 || frame >= len(a) {
		return NoTeam
	}
	if team, ok := a[frame][player]; ok {
		return team
	}
	return NoTeam
}

//handover decides the event for a change of holder given both holders' teams
type handover func(prevTeam, currTeam int) int

//walkHandovers tracks the last known holder and reports every change of holder to onChange
func walkHandovers(seq Sequence, assignment TeamAssignment, onChange handover) Events {
	out := make(Events, len(seq))
	for i := range out {
		out[i] = NoTeam
	}

	prevHolder, prevFrame := NoPlayer, -1
	for i := 1; i < len(seq); i++ {
		if seq[i-1] != NoPlayer {
			prevHolder, prevFrame = seq[i-1], i-1
		}

		curr := seq[i]
		if prevHolder == NoPlayer || curr == NoPlayer || curr == prevHolder {
			continue
		}

		out[i] = onChange(assignment.teamOf(prevFrame, prevHolder), assignment.teamOf(i, curr))
	}

	return out
}

//DetectPasses flags the frames where the ball moved between two players of the same team, tagged with that team
func DetectPasses(seq Sequence, assignment TeamAssignment) Events {
	return walkHandovers(seq, assignment, func(prevTeam, currTeam int) int {
		if prevTeam != NoTeam && prevTeam == currTeam {
			return prevTeam
		}
		return NoTeam
	})
}

//DetectInterceptions flags the frames where the ball moved to a player of the other team, tagged with the new holder's team
func DetectInterceptions(seq Sequence, assignment TeamAssignment) Events {
	return walkHandovers(seq, assignment, func(prevTeam, currTeam int) int {
		if prevTeam != NoTeam && currTeam != NoTeam && prevTeam != currTeam {
			return currTeam
		}
		return NoTeam
	})
}
