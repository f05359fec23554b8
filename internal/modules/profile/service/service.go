package profile

import (
	"context"
	"fmt"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/post/viewmodel"
	"anoa.com/socialfeed/internal/modules/profile/dto"
	"anoa.com/socialfeed/pkg/apperror"
)

const (
	TabPhotos = "photos"
	TabAbout  = "about"
	TabAwards = "awards"
)

const aboutText = "Lorem ipsum dolor sit amet, consectetur ipsum of adipiscing elit. tellus vitae lacinia sollicitudin, nisl velit lobortis lectus"

var tabs = []struct{ id, label string }{
	{TabPhotos, "Photos"},
	{TabAbout, "About"},
	{TabAwards, "Awards"},
}

type ProfileService interface {
	// GetProfile renders the profile with the given tab open. An empty tab
	// opens photos.
	GetProfile(ctx context.Context, tab string) (*dto.ProfileResponse, error)
	Author() entity.Author
}

type profileService struct {
	user entity.User
}

func NewProfileService(user entity.User) ProfileService {
	return &profileService{user: user}
}

func (s *profileService) Author() entity.Author {
	return s.user.AsAuthor()
}

func (s *profileService) GetProfile(ctx context.Context, tab string) (*dto.ProfileResponse, error) {
	if tab == "" {
		tab = TabPhotos
	}

	content, err := s.tabContent(tab)
	if err != nil {
		return nil, err
	}

	res := &dto.ProfileResponse{
		User:     s.user.AsAuthor(),
		Location: s.user.Location,
		Stats: []dto.StatItem{
			statItem("Followers", s.user.Stats.Followers),
			statItem("Photos", s.user.Stats.Photos),
			statItem("Likes", s.user.Stats.Likes),
		},
		ActiveTab: tab,
		Content:   content,
	}
	for _, t := range tabs {
		res.Tabs = append(res.Tabs, dto.TabButton{ID: t.id, Label: t.label, Active: t.id == tab})
	}

	return res, nil
}

func (s *profileService) tabContent(tab string) (dto.TabContent, error) {
	switch tab {
	case TabPhotos:
		return dto.TabContent{Title: "Photos", Photos: append([]string(nil), s.user.Photos...)}, nil
	case TabAbout:
		return dto.TabContent{Title: "About", Text: aboutText}, nil
	case TabAwards:
		return dto.TabContent{Title: "Awards", EmptyText: "No awards yet"}, nil
	default:
		return dto.TabContent{}, apperror.Invalid(fmt.Sprintf("unknown profile tab %q", tab))
	}
}

func statItem(label string, value int) dto.StatItem {
	return dto.StatItem{Label: label, Value: value, Text: viewmodel.FormatCount(value)}
}
