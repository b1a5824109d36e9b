package models

type Bucket struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`

	Tasks []TaskDefinition `gorm:"foreignKey:BucketID" json:"tasks,omitempty"`
}

type SeedBucket struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Tasks       []string
}

// DefaultSeedBuckets is the starter catalog installed into an empty store.
func DefaultSeedBuckets() []SeedBucket {
	starterTasks := []string{
		"Review and clear inbox",
		"Update ticket statuses",
		"Escalate critical issues",
	}
	return []SeedBucket{
		{Title: "Inbound Support", Description: "Handling tickets.", Icon: "Headphones", Color: "blue", Tasks: starterTasks},
		{Title: "Proactive Outreach", Description: "Reaching out to customers.", Icon: "Megaphone", Color: "green", Tasks: starterTasks},
		{Title: "Onboarding", Description: "Helping new customers.", Icon: "UserPlus", Color: "purple", Tasks: starterTasks},
		{Title: "Technical Operations", Description: "Bug replication.", Icon: "Wrench", Color: "orange", Tasks: starterTasks},
		{Title: "Content & Knowledge", Description: "Updating FAQ.", Icon: "BookOpen", Color: "pink", Tasks: starterTasks},
		{Title: "Team Sync", Description: "Meetings, huddles.", Icon: "Users", Color: "teal", Tasks: starterTasks},
		{Title: "Learning & Dev", Description: "Training, courses.", Icon: "GraduationCap", Color: "yellow", Tasks: starterTasks},
	}
}
