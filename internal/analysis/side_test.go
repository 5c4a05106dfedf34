package analysis

import (
	"testing"

	"github.com/ayusman/formcheck/internal/pose"
)

// landmarksWithVisibility builds a landmark set where only the named indices
// carry visibility; everything else is zero.
func landmarksWithVisibility(vis map[int]float64) *pose.Landmarks {
	lms := &pose.Landmarks{}
	for i, v := range vis {
		lms.Points[i].Visibility = v
	}
	return lms
}

func TestLegSide(t *testing.T) {
	tests := []struct {
		name string
		vis  map[int]float64
		want Side
	}{
		{
			name: "left leg clearly visible",
			vis: map[int]float64{
				pose.LeftHip: 0.9, pose.LeftKnee: 0.9,
				pose.RightHip: 0.2, pose.RightKnee: 0.3,
			},
			want: Left,
		},
		{
			name: "right leg clearly visible",
			vis: map[int]float64{
				pose.LeftHip: 0.1, pose.LeftKnee: 0.2,
				pose.RightHip: 0.9, pose.RightKnee: 0.8,
			},
			want: Right,
		},
		{
			name: "tie defaults to left",
			vis: map[int]float64{
				pose.LeftHip: 0.5, pose.LeftKnee: 0.5,
				pose.RightHip: 0.5, pose.RightKnee: 0.5,
			},
			want: Left,
		},
		{
			name: "knee visibility can outweigh hip",
			vis: map[int]float64{
				pose.LeftHip: 0.9, pose.LeftKnee: 0.1,
				pose.RightHip: 0.4, pose.RightKnee: 0.9,
			},
			want: Right,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := legSide(landmarksWithVisibility(tt.vis)); got != tt.want {
				t.Errorf("legSide = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArmSide(t *testing.T) {
	tests := []struct {
		name string
		vis  map[int]float64
		want Side
	}{
		{
			name: "left arm clearly visible",
			vis: map[int]float64{
				pose.LeftShoulder: 0.9, pose.LeftElbow: 0.9, pose.LeftWrist: 0.9,
				pose.RightShoulder: 0.1, pose.RightElbow: 0.1, pose.RightWrist: 0.1,
			},
			want: Left,
		},
		{
			name: "right arm clearly visible",
			vis: map[int]float64{
				pose.LeftShoulder: 0.3, pose.LeftElbow: 0.2, pose.LeftWrist: 0.1,
				pose.RightShoulder: 0.9, pose.RightElbow: 0.9, pose.RightWrist: 0.8,
			},
			want: Right,
		},
		{
			name: "tie defaults to left",
			vis:  map[int]float64{},
			want: Left,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := armSide(landmarksWithVisibility(tt.vis)); got != tt.want {
				t.Errorf("armSide = %v, want %v", got, tt.want)
			}
		})
	}
}
