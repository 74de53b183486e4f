package alignment

// Streak is a consecutive-day counter. LastCredited is the day key the
// streak was last advanced; Longest never drops below Current.
type Streak struct {
	Current      int
	Longest      int
	LastCredited string
}

// credit advances the streak for an activity on today. The continuity check
// deliberately treats "credited yesterday" and "already credited today" as
// one branch: the increment is guarded on LastCredited != today, which makes
// repeated same-day credits idempotent. Any other gap resets to 1.
func (s *Streak) credit(today, yesterday string) {
	if s.LastCredited == yesterday || s.LastCredited == today {
		if s.LastCredited != today {
			s.Current++
		}
	} else {
		s.Current = 1
	}
	s.LastCredited = today
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
}
