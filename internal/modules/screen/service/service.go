package screen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"anoa.com/socialfeed/internal/entity"
	activity "anoa.com/socialfeed/internal/modules/activity/service"
	categoryDto "anoa.com/socialfeed/internal/modules/category/dto"
	category "anoa.com/socialfeed/internal/modules/category/service"
	commentDto "anoa.com/socialfeed/internal/modules/comment/dto"
	comment "anoa.com/socialfeed/internal/modules/comment/service"
	post "anoa.com/socialfeed/internal/modules/post/service"
	"anoa.com/socialfeed/internal/modules/post/viewmodel"
	profile "anoa.com/socialfeed/internal/modules/profile/service"
	"anoa.com/socialfeed/internal/modules/screen/dto"
	search "anoa.com/socialfeed/internal/modules/search/service"
	theme "anoa.com/socialfeed/internal/modules/theme/service"
	"anoa.com/socialfeed/pkg/apperror"
	"anoa.com/socialfeed/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Destination names a navigation target of the app.
type Destination string

const (
	DestHome         Destination = "Home"
	DestExplore      Destination = "Explore"
	DestCreate       Destination = "Create"
	DestActivity     Destination = "Activity"
	DestProfile      Destination = "Profile"
	DestPostDetail   Destination = "PostDetail"
	DestCategoryFeed Destination = "CategoryFeed"
)

const (
	appTitle        = "Lumina"
	maxPostLength   = 1000
	todaySectionLen = 3
)

var trending = []dto.TrendingItem{
	{Rank: 1, Title: "Modern Minimalist Design", Subtitle: "Trending in Architecture"},
	{Rank: 2, Title: "Sustainable Building Materials", Subtitle: "Trending in Green Design"},
	{Rank: 3, Title: "Urban Planning Innovations", Subtitle: "Trending in City Design"},
}

type ScreenService interface {
	Home(ctx context.Context) dto.HomeScreen
	// Explore lists categories and trending topics. A non-blank query adds
	// search results.
	Explore(ctx context.Context, query string) (*dto.ExploreScreen, error)
	Create(ctx context.Context) dto.CreateScreen
	Activity(ctx context.Context) dto.ActivityScreen
	Profile(ctx context.Context, tab string) (*dto.ProfileScreen, error)
	// PostDetail shows the first catalog post when postID is unknown.
	PostDetail(ctx context.Context, postID string) (*dto.PostDetailScreen, error)
	// CategoryFeed renders the not-found state for an unknown categoryID.
	CategoryFeed(ctx context.Context, categoryID string) dto.CategoryFeedScreen

	ToggleLike(ctx context.Context, viewID, postID string) (*dto.PostInteractionResponse, error)
	ToggleBookmark(ctx context.Context, viewID, postID string) (*dto.PostInteractionResponse, error)
	// Refresh waits out the simulated reload and returns the view unchanged.
	Refresh(ctx context.Context, viewID string) (*dto.RefreshResponse, error)
}

// Dependencies are the content services screens compose.
type Dependencies struct {
	Posts      post.PostService
	Categories category.CategoryService
	Comments   comment.CommentService
	Activities activity.ActivityService
	Profile    profile.ProfileService
	Searcher   search.Searcher
}

type screenService struct {
	store        theme.ThemeStore
	views        *ViewRegistry
	deps         Dependencies
	refreshDelay time.Duration
}

// NewScreenService panics when the theme store or view registry is missing.
func NewScreenService(store theme.ThemeStore, views *ViewRegistry, deps Dependencies, refreshDelay time.Duration) ScreenService {
	if store == nil {
		panic("screen: theme store is required")
	}
	if views == nil {
		panic("screen: view registry is required")
	}
	return &screenService{
		store:        store,
		views:        views,
		deps:         deps,
		refreshDelay: refreshDelay,
	}
}

func (s *screenService) frame(destination Destination) dto.Frame {
	pref := s.store.Preference()
	return dto.Frame{
		Destination: string(destination),
		IsDarkMode:  pref.IsDarkMode,
		Palette:     theme.PaletteFor(pref.IsDarkMode),
	}
}

func (s *screenService) mount(destination Destination, posts []entity.Post) *view {
	v := s.views.mount(destination, posts)
	logger.Log.WithFields(logrus.Fields{
		"view_id":     v.id,
		"destination": destination,
		"posts":       len(v.order),
	}).Debug("view mounted")
	return v
}

func (s *screenService) Home(ctx context.Context) dto.HomeScreen {
	frame := s.frame(DestHome)
	v := s.mount(DestHome, s.deps.Posts.ListPosts(ctx))

	toggleIcon := "moon"
	if frame.IsDarkMode {
		toggleIcon = "sunny"
	}

	return dto.HomeScreen{
		Frame:  frame,
		ViewID: v.id,
		Header: dto.Header{Title: appTitle, Icon: "camera", ToggleIcon: toggleIcon},
		Hero: dto.Hero{
			Title:    "Welcome to " + appTitle,
			Subtitle: "Discover architectural excellence, share inspiring designs, and connect with the global architecture community.",
		},
		Posts:   v.snapshot(),
		EndText: "You've reached the end",
	}
}

func (s *screenService) Explore(ctx context.Context, query string) (*dto.ExploreScreen, error) {
	categories := s.deps.Categories.ListCategories(ctx)

	screen := &dto.ExploreScreen{
		Frame:             s.frame(DestExplore),
		Header:            dto.Header{Title: "Explore"},
		SearchPlaceholder: "Search architecture, designers, projects...",
		Query:             query,
		Categories:        make([]categoryDto.CategoryResponse, 0, len(categories)),
		Trending:          append([]dto.TrendingItem(nil), trending...),
	}
	for _, c := range categories {
		screen.Categories = append(screen.Categories, categoryDto.NewCategoryResponse(c))
	}

	if query == "" {
		return screen, nil
	}

	posts, err := s.deps.Searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	screen.Results = make([]viewmodel.PostView, 0, len(posts))
	for _, p := range posts {
		screen.Results = append(screen.Results, viewmodel.NewPostViewModel(p).View())
	}
	return screen, nil
}

func (s *screenService) Create(ctx context.Context) dto.CreateScreen {
	return dto.CreateScreen{
		Frame:       s.frame(DestCreate),
		Header:      dto.Header{Title: "Create Post", ActionLabel: "Post"},
		CancelLabel: "Cancel",
		PostTypes: []dto.PostTypeOption{
			{Type: string(entity.ContentText), Icon: "text", Label: "Text", Selected: true},
			{Type: string(entity.ContentImage), Icon: "image", Label: "Image"},
			{Type: string(entity.ContentQuote), Icon: "chatbubble-ellipses", Label: "Quote"},
		},
		Placeholder:      "What's on your mind about architecture?",
		QuotePlaceholder: "Your quote will appear here...",
		MaxLength:        maxPostLength,
		Options: []dto.Option{
			{Label: "Add Photo", Icon: "camera"},
			{Label: "Add Location", Icon: "location"},
			{Label: "Add Tags", Icon: "pricetag"},
		},
		SubmitPath: "/api/posts",
	}
}

func (s *screenService) Activity(ctx context.Context) dto.ActivityScreen {
	frame := s.frame(DestActivity)
	entries := s.deps.Activities.Entries(ctx, frame.Palette)
	split := min(todaySectionLen, len(entries))

	return dto.ActivityScreen{
		Frame:  frame,
		Header: dto.Header{Title: "Activity", Icon: "settings-outline"},
		Sections: []dto.ActivitySection{
			{Title: "Today", Items: entries[:split]},
			{Title: "Earlier", Items: entries[split:]},
		},
		EmptyText: "No more activities to show",
	}
}

func (s *screenService) Profile(ctx context.Context, tab string) (*dto.ProfileScreen, error) {
	res, err := s.deps.Profile.GetProfile(ctx, tab)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileScreen{
		Frame:           s.frame(DestProfile),
		ProfileResponse: *res,
		FollowLabel:     "FOLLOW",
	}, nil
}

func (s *screenService) PostDetail(ctx context.Context, postID string) (*dto.PostDetailScreen, error) {
	p, ok := s.deps.Posts.FindPost(ctx, postID)
	fallback := false
	if !ok {
		posts := s.deps.Posts.ListPosts(ctx)
		if len(posts) == 0 {
			return nil, apperror.NotFound("post not found")
		}
		p, fallback = &posts[0], true
		logger.Log.WithField("post_id", postID).Debug("unknown post, showing first post")
	}

	v := s.mount(DestPostDetail, []entity.Post{*p})
	comments := s.deps.Comments.ListCommentsForPost(ctx, p.ID)

	return &dto.PostDetailScreen{
		Frame:    s.frame(DestPostDetail),
		ViewID:   v.id,
		Fallback: fallback,
		Header:   dto.Header{Title: "Post", ShowBack: true},
		Post:     v.snapshot()[0],
		Comments: dto.CommentsSection{
			Title:            fmt.Sprintf("Comments (%d)", len(comments)),
			Comments:         commentDto.NewCommentResponses(comments),
			InputPlaceholder: "Add a comment...",
		},
	}, nil
}

func (s *screenService) CategoryFeed(ctx context.Context, categoryID string) dto.CategoryFeedScreen {
	frame := s.frame(DestCategoryFeed)

	c, ok := s.deps.Categories.FindCategory(ctx, categoryID)
	if !ok {
		return dto.CategoryFeedScreen{
			Frame:      frame,
			NotFound:   true,
			CategoryID: categoryID,
			Title:      "Category Not Found",
			Message:    "The category you're looking for doesn't exist.",
			Action:     &dto.Action{Label: "Go Back", Destination: string(DestExplore)},
		}
	}

	v := s.mount(DestCategoryFeed, s.deps.Categories.PostsForCategory(ctx, c.ID))
	screen := dto.CategoryFeedScreen{
		Frame:      frame,
		ViewID:     v.id,
		CategoryID: c.ID,
		Title:      c.Name,
		Header: &dto.Header{
			Title:    c.Name,
			Subtitle: viewmodel.FormatCount(c.PostCount) + " posts",
			ShowBack: true,
		},
		Banner: &dto.Banner{Title: c.Name, Description: c.Description, ImageURL: c.ImageURL},
		Posts:  v.snapshot(),
	}

	if len(screen.Posts) == 0 {
		screen.Empty = &dto.EmptyState{
			Icon:     "images-outline",
			Title:    "No posts in this category yet",
			Subtitle: fmt.Sprintf("Be the first to share something amazing in %s!", c.Name),
			Action:   &dto.Action{Label: "Create Post", Destination: string(DestCreate), Icon: "add"},
		}
	} else {
		screen.EndText = "You've reached the end of " + c.Name
	}
	return screen
}

func (s *screenService) ToggleLike(ctx context.Context, viewID, postID string) (*dto.PostInteractionResponse, error) {
	return s.interact(viewID, postID, (*viewmodel.PostViewModel).ToggleLike)
}

func (s *screenService) ToggleBookmark(ctx context.Context, viewID, postID string) (*dto.PostInteractionResponse, error) {
	return s.interact(viewID, postID, (*viewmodel.PostViewModel).ToggleBookmark)
}

func (s *screenService) interact(viewID, postID string, fn func(*viewmodel.PostViewModel)) (*dto.PostInteractionResponse, error) {
	v, ok := s.views.lookup(viewID)
	if !ok {
		return nil, apperror.NotFound("view not found")
	}
	pv, ok := v.apply(postID, fn)
	if !ok {
		return nil, apperror.NotFound("post not in view")
	}
	return &dto.PostInteractionResponse{ViewID: v.id, Post: pv}, nil
}

func (s *screenService) Refresh(ctx context.Context, viewID string) (*dto.RefreshResponse, error) {
	v, ok := s.views.lookup(viewID)
	if !ok {
		return nil, apperror.NotFound("view not found")
	}

	timer := time.NewTimer(s.refreshDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, apperror.New(http.StatusRequestTimeout, "refresh canceled", ctx.Err())
	}

	return &dto.RefreshResponse{
		Frame:  s.frame(v.destination),
		ViewID: v.id,
		Posts:  v.snapshot(),
	}, nil
}
