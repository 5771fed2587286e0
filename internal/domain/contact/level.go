package contact

import "strings"

// Level is a student's primary school level, P1 to P6.
type Level string

const (
	LevelP1 Level = "P1"
	LevelP2 Level = "P2"
	LevelP3 Level = "P3"
	LevelP4 Level = "P4"
	LevelP5 Level = "P5"
	LevelP6 Level = "P6"
)

var levels = [...]Level{LevelP1, LevelP2, LevelP3, LevelP4, LevelP5, LevelP6}

func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, l := range levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", ErrInvalidLevel
}

// Subject is a taught subject.
type Subject string

const (
	SubjectEnglish Subject = "ENGLISH"
	SubjectMath    Subject = "MATH"
	SubjectScience Subject = "SCIENCE"
	SubjectMT      Subject = "MT"
)

var subjects = [...]Subject{SubjectEnglish, SubjectMath, SubjectScience, SubjectMT}

func ParseSubject(s string) (Subject, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, sub := range subjects {
		if string(sub) == s {
			return sub, nil
		}
	}
	return "", ErrInvalidSubject
}

// ParseSubjects parses and de-duplicates, keeping first-seen order.
func ParseSubjects(raw []string) ([]Subject, error) {
	out := make([]Subject, 0, len(raw))
	seen := make(map[Subject]bool, len(raw))
	for _, r := range raw {
		sub, err := ParseSubject(r)
		if err != nil {
			return nil, err
		}
		if seen[sub] {
			continue
		}
		seen[sub] = true
		out = append(out, sub)
	}
	return out, nil
}
