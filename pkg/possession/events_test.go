package possession

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const a, b, c = 10, 20, 30

func sameFrames(n int, teams map[int]int) TeamAssignment {
	out := make(TeamAssignment, n)
	for i := range out {
		out[i] = teams
	}
	return out
}

func TestDetectPassesSameTeam(t *testing.T) {
	seq := Sequence{a, a, b}
	assignment := sameFrames(len(seq), map[int]int{a: 1, b: 1})

	assert.Equal(t, Events{NoTeam, NoTeam, 1}, DetectPasses(seq, assignment))
	assert.Equal(t, Events{NoTeam, NoTeam, NoTeam}, DetectInterceptions(seq, assignment))
}

func TestDetectInterceptionsOtherTeam(t *testing.T) {
	seq := Sequence{a, a, b}
	assignment := sameFrames(len(seq), map[int]int{a: 1, b: 2})

	assert.Equal(t, Events{NoTeam, NoTeam, 2}, DetectInterceptions(seq, assignment))
	assert.Equal(t, Events{NoTeam, NoTeam, NoTeam}, DetectPasses(seq, assignment))
}

func TestHandoverAcrossGap(t *testing.T) {
	// the last known holder survives frames without possession
	seq := Sequence{a, NoPlayer, NoPlayer, b, b, c}
	assignment := sameFrames(len(seq), map[int]int{a: 2, b: 2, c: 1})

	assert.Equal(t, Events{NoTeam, NoTeam, NoTeam, 2, NoTeam, NoTeam}, DetectPasses(seq, assignment))
	assert.Equal(t, Events{NoTeam, NoTeam, NoTeam, NoTeam, NoTeam, 1}, DetectInterceptions(seq, assignment))
}

func TestHandoverUsesTeamAtHoldingFrame(t *testing.T) {
	// a is only assigned at frame 0, where it last held the ball
	seq := Sequence{a, NoPlayer, b}
	assignment := TeamAssignment{{a: 1}, {}, {b: 1}}

	assert.Equal(t, Events{NoTeam, NoTeam, 1}, DetectPasses(seq, assignment))
}

func TestNoEventWhenTeamUnknown(t *testing.T) {
	seq := Sequence{a, b}
	assignment := TeamAssignment{{a: 1}, {}}

	assert.Equal(t, Events{NoTeam, NoTeam}, DetectPasses(seq, assignment))
	assert.Equal(t, Events{NoTeam, NoTeam}, DetectInterceptions(seq, assignment))
}

func TestNoEventForUnchangedOrNone(t *testing.T) {
	seq := Sequence{NoPlayer, a, a, NoPlayer, a}
	assignment := sameFrames(len(seq), map[int]int{a: 1})

	assert.Equal(t, Events{NoTeam, NoTeam, NoTeam, NoTeam, NoTeam}, DetectPasses(seq, assignment))
	assert.Equal(t, Events{NoTeam, NoTeam, NoTeam, NoTeam, NoTeam}, DetectInterceptions(seq, assignment))
}

func TestFirstFrameNeverHasEvent(t *testing.T) {
	seq := Sequence{b}
	assignment := sameFrames(1, map[int]int{b: 1})
	assert.Equal(t, Events{NoTeam}, DetectPasses(seq, assignment))
	assert.Empty(t, DetectInterceptions(Sequence{}, TeamAssignment{}))
}

func TestTeamControlAndShare(t *testing.T) {
	seq := Sequence{NoPlayer, a, a, b, c}
	assignment := sameFrames(len(seq), map[int]int{a: 1, b: 2})

	control := TeamControl(seq, assignment)
	assert.Equal(t, []int{NoTeam, 1, 1, 2, NoTeam}, control)

	t1, t2 := ControlShare(control, 3)
	assert.InDelta(t, 0.5, t1, 1e-12)
	assert.InDelta(t, 0.25, t2, 1e-12)

	t1, t2 = ControlShare(control, 100)
	assert.InDelta(t, 0.4, t1, 1e-12)
	assert.InDelta(t, 0.2, t2, 1e-12)

	t1, t2 = ControlShare(nil, 0)
	assert.Zero(t, t1)
	assert.Zero(t, t2)
}

func TestEventCounts(t *testing.T) {
	passes := Events{NoTeam, 1, 1, 2, NoTeam}
	interceptions := Events{NoTeam, NoTeam, 2, NoTeam, 1}

	assert.Equal(t, Counts{Team1Passes: 2, Team2Passes: 1, Team2Interceptions: 1, Team1Interceptions: 1}, EventCounts(passes, interceptions, 4))
	assert.Equal(t, Counts{Team1Passes: 1}, EventCounts(passes, interceptions, 1))
}
