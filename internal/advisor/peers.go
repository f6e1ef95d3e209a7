package advisor

import (
	"context"
	"fmt"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/scoring"
)

type Peer struct {
	StudentID    string  `json:"studentId"`
	FullName     string  `json:"fullName"`
	Major        string  `json:"major"`
	Similarity   float64 `json:"similarity"`
	AverageGrade float64 `json:"averageGrade"`
	GradeCount   int     `json:"gradeCount"`
}

func peerProfile(st academic.Student) scoring.PeerProfile {
	gpa := scoring.DefaultGPA
	if st.CurrentGPA != nil {
		gpa = *st.CurrentGPA
	}
	return scoring.PeerProfile{GPA: gpa, Major: st.Major, HasDisability: st.HasDisability}
}

// Peers returns up to n students with recorded grades most similar to the
// caller, most similar first.
func (s *Service) Peers(ctx context.Context, userID string, n int) ([]Peer, error) {
	st, err := s.Student(ctx, userID)
	if err != nil {
		return nil, err
	}
	avgs, err := s.store.AverageGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("average grades: %w", err)
	}
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	byID := make(map[string]academic.Student, len(students))
	for _, x := range students {
		byID[x.ID] = x
	}

	self := peerProfile(st)
	peers := make([]Peer, 0, len(avgs))
	for _, a := range avgs {
		other, ok := byID[a.StudentID]
		if !ok || other.ID == st.ID {
			continue
		}
		peers = append(peers, Peer{
			StudentID:    other.ID,
			FullName:     other.FullName,
			Major:        other.Major,
			Similarity:   scoring.PeerSimilarity(self, peerProfile(other)),
			AverageGrade: a.Average,
			GradeCount:   a.GradeCount,
		})
	}
	return scoring.Rank(peers, n, func(p Peer) float64 { return p.Similarity }), nil
}
