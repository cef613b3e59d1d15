package generator

// PruneDeadEnds removes corridors that only one door touches, together with
// their doors, until a full pass removes nothing or maxPasses is reached.
// Each pass removes at most one corridor, scanning from the newest structure,
// and recounts before the next. The floor set is not rebuilt.
func (l *Layout) PruneDeadEnds(maxPasses int) PruneReport {
	var report PruneReport

	pruned := true
	for pruned && report.Passes < maxPasses {
		pruned = false
		report.Passes++

		counts := l.DoorTouches()
		for i := len(l.Structures) - 1; i >= 0; i-- {
			s := l.Structures[i]
			if !s.IsCorridor || counts[i] != 1 || len(l.Structures) <= 1 {
				continue
			}

			l.removeStructure(i)
			report.Removed++
			pruned = true
			break
		}
	}

	report.CapHit = pruned && report.Passes >= maxPasses
	return report
}

// removeStructure deletes structure i and every door touching it
func (l *Layout) removeStructure(i int) {
	rect := l.Structures[i].Rect

	for _, door := range l.Doors.Cells() {
		if rect.Touches(door) {
			l.Doors.Remove(door)
		}
	}

	links := l.Links[:0]
	for _, link := range l.Links {
		if l.Doors.Has(link.Door) {
			links = append(links, link)
		}
	}
	l.Links = links

	l.Structures = append(l.Structures[:i], l.Structures[i+1:]...)
}
