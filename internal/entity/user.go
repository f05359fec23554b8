package entity

type UserStats struct {
	Followers int `json:"followers"`
	Photos    int `json:"photos"`
	Likes     int `json:"likes"`
}

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar,omitempty"`
	Location    string    `json:"location,omitempty"`
	Stats       UserStats `json:"stats"`
	Photos      []string  `json:"photos"`
}

// AsAuthor returns the embeddable author view of the user.
func (u User) AsAuthor() Author {
	return Author{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
	}
}
