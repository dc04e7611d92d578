package recommendation

// DefaultRecommendations is the starter wellness set.
func DefaultRecommendations() []Recommendation {
	return []Recommendation{
		{
			Name:         "Child's Pose",
			Type:         "Yoga",
			Symptoms:     []string{"back pain", "stress", "fatigue"},
			Duration:     "1-3 mins",
			Difficulty:   "Beginner",
			Description:  "A gentle resting pose that stretches the hips, thighs, and ankles while reducing stress and fatigue.",
			ImageURL:     "https://upload.wikimedia.org/wikipedia/commons/1/18/Balasana.JPG",
			ImageSource:  "Wikimedia Commons",
			ImageLicense: "CC BY-SA 3.0",
			SafetyTips:   []string{"Avoid if you have knee injuries."},
		},
		{
			Name:         "Cat-Cow Stretch",
			Type:         "Stretch",
			Symptoms:     []string{"back pain", "neck pain", "posture"},
			Duration:     "1-2 mins",
			Difficulty:   "Beginner",
			Description:  "Improves posture and balance, strengthens the neck and spine.",
			ImageURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/Cat_Cow_Pose.jpg/640px-Cat_Cow_Pose.jpg",
			ImageSource:  "Wikimedia Commons",
			ImageLicense: "Public Domain",
			SafetyTips:   []string{"Move gently with your breath."},
		},
		{
			Name:         "Corpse Pose (Savasana)",
			Type:         "Yoga",
			Symptoms:     []string{"stress", "anxiety", "insomnia", "headache"},
			Duration:     "5-10 mins",
			Difficulty:   "Beginner",
			Description:  "Relaxes the whole body, releases stress, depression, fatigue, and tension.",
			ImageURL:     "https://upload.wikimedia.org/wikipedia/commons/a/aa/Savasana.JPG",
			ImageSource:  "Wikimedia Commons",
			ImageLicense: "CC BY-SA 3.0",
			SafetyTips:   []string{"Keep your body warm."},
		},
	}
}
