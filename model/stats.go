package model

// Stat is one tile of the statistics grid.
type Stat struct {
	Label string
	Value int
	Color string
	// Emphasis marks tiles whose value is drawn in the accent text color.
	Emphasis bool
}

func UserStats(users []*User) []Stat {
	counts := map[UserStatus]int{}
	admins := 0
	for _, user := range users {
		counts[user.Status]++
		if user.Role == ROLE_ADMIN {
			admins++
		}
	}

	return []Stat{
		{Label: "Total", Value: len(users), Color: "blue"},
		{Label: "Active", Value: counts[USER_STATUS_ACTIVE], Color: "green"},
		{Label: "Inactive", Value: counts[USER_STATUS_INACTIVE], Color: "orange"},
		{Label: "Suspended", Value: counts[USER_STATUS_SUSPENDED], Color: "red"},
		{Label: "Admins", Value: admins, Color: "gray", Emphasis: true},
	}
}

func PostStats(posts []*Post) []Stat {
	counts := map[PostStatus]int{}
	views := 0
	for _, post := range posts {
		counts[post.Status]++
		views += post.Views
	}

	return []Stat{
		{Label: "Total", Value: len(posts), Color: "blue"},
		{Label: "Published", Value: counts[POST_STATUS_PUBLISHED], Color: "green"},
		{Label: "Drafts", Value: counts[POST_STATUS_DRAFT], Color: "orange"},
		{Label: "Archived", Value: counts[POST_STATUS_ARCHIVED], Color: "red"},
		{Label: "Total views", Value: views, Color: "gray", Emphasis: true},
	}
}
