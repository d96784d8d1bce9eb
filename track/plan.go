package track

import (
	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/geometry"
)

// ProfilePlan is the width profile assignment for a newly placed segment
// and the revision its predecessor needs to keep the seam continuous
type ProfilePlan struct {
	Next        geometry.Profile
	RevisedPrev geometry.Profile
	PrevChanged bool
}

// PlanProfiles decides the profile of next placed after prev
//
// A narrow or wide segment first assumes it is a run of one and tapers both ends.
// When it continues a run of the same family it drops its entry taper, and the
// predecessor drops its exit taper so the two meet at the run's width
func PlanProfiles(prev config.SegmentType, prevProfile geometry.Profile, next config.SegmentType) ProfilePlan {
	plan := ProfilePlan{Next: geometry.Full, RevisedPrev: prevProfile}

	switch {
	case next.IsNarrow():
		if prev.IsNarrow() {
			plan.Next = geometry.NarrowTaperOut
			plan.RevisedPrev = prevProfile.WithoutTaperOut()
		} else {
			plan.Next = geometry.NarrowTaperBoth
		}
	case next.IsWide():
		if prev.IsWide() {
			plan.Next = geometry.WideTaperOut
			plan.RevisedPrev = prevProfile.WithoutTaperOut()
		} else {
			plan.Next = geometry.WideTaperBoth
		}
	}

	plan.PrevChanged = plan.RevisedPrev != prevProfile
	return plan
}
