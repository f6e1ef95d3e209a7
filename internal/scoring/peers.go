package scoring

import "math"

// PeerProfile is the part of a student compared for similarity.
type PeerProfile struct {
	GPA           float64
	Major         string
	HasDisability bool
}

// PeerSimilarity scores two students: (5 - |gpa diff|)*0.4 + same major*0.3 +
// same disability status*0.3.
func PeerSimilarity(a, b PeerProfile) float64 {
	major := 0.0
	if a.Major != "" && a.Major == b.Major {
		major = 1
	}
	disability := 0.0
	if a.HasDisability == b.HasDisability {
		disability = 1
	}
	return (5-math.Abs(a.GPA-b.GPA))*0.4 + major*0.3 + disability*0.3
}
