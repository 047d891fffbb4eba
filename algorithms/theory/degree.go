package theory

var degreeLabels = [NumPitchClasses]string{"1", "♭2", "2", "♭3", "3", "4", "♭5", "5", "♭6", "6", "♭7", "7"}

// DegreeLabel returns the label for a semitone distance from the root
func DegreeLabel(semitones int) string {
	return degreeLabels[Note(semitones).Index()]
}

// ScaleDegree labels n by its distance from the root of s. Notes outside the
// scale still get a label; use IsNoteInScale for membership.
func ScaleDegree(n Note, s Scale) string {
	return DegreeLabel(Interval(s.Root, n))
}

// Degrees returns the degree label of every note of the scale, in order
func (s Scale) Degrees() []string {
	intervals := s.Intervals()
	labels := make([]string, len(intervals))
	for i, iv := range intervals {
		labels[i] = DegreeLabel(iv)
	}
	return labels
}
