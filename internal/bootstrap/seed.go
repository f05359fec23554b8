package bootstrap

import (
	"anoa.com/socialfeed/internal/entity"
	"gorm.io/gorm"
)

// Migrate creates the tables used by the postgres preference backend.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Preference{},
	)
}

// Catalog is the static content every screen reads from.
type Catalog struct {
	Posts      []entity.Post
	Categories []entity.Category
	Comments   []entity.Comment
	Activities []entity.ActivityItem
	Profile    entity.User
}

// SeedCatalog returns a fresh copy of the seeded content. Feed order is the
// slice order.
func SeedCatalog() *Catalog {
	return &Catalog{
		Posts:      seedPosts(),
		Categories: seedCategories(),
		Comments:   seedComments(),
		Activities: seedActivities(),
		Profile:    seedProfile(),
	}
}

const (
	avatarZaha   = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face"
	avatarMarcus = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"
	avatarUrban  = "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face"
	avatarElena  = "https://images.unsplash.com/photo-1494790108755-2616b612ab27?w=150&h=150&fit=crop&crop=face"
	avatarGreen  = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=face"
)

func seedPosts() []entity.Post {
	return []entity.Post{
		{
			ID:     "1",
			Author: entity.Author{Username: "studio_zaha", DisplayName: "Zaha Hadid Architects", Avatar: avatarZaha},
			Content: entity.PostContent{
				Type:     entity.ContentImage,
				ImageURL: "https://images.unsplash.com/photo-1511818966892-d612672e2540?w=800&h=600&fit=crop",
				ImageAlt: "Modern architectural facade with flowing curves",
			},
			Stats:        entity.PostStats{Likes: 1247, Comments: 89, Shares: 34},
			Timestamp:    "2h",
			IsBookmarked: true,
		},
		{
			ID:     "2",
			Author: entity.Author{Username: "arch_minimalist", DisplayName: "Marcus Webb", Avatar: avatarMarcus},
			Content: entity.PostContent{
				Type: entity.ContentText,
				Text: "Just completed the design for our new sustainable housing project. The integration of passive solar design with modern materials creates spaces that breathe with the environment. Architecture isn't just about shelter—it's about creating harmony between human needs and natural systems. 🏗️🌱",
			},
			Stats:     entity.PostStats{Likes: 456, Comments: 67, Shares: 23},
			Timestamp: "4h",
		},
		{
			ID:     "3",
			Author: entity.Author{Username: "brutalist_collective", DisplayName: "Urban Forms Studio", Avatar: avatarUrban},
			Content: entity.PostContent{
				Type:     entity.ContentImage,
				ImageURL: "https://images.unsplash.com/photo-1520637736862-4d197d17c72a?w=800&h=600&fit=crop",
				ImageAlt: "Brutalist concrete structure with geometric patterns",
			},
			Stats:     entity.PostStats{Likes: 789, Comments: 124, Shares: 45},
			Timestamp: "6h",
		},
		{
			ID:     "4",
			Author: entity.Author{Username: "steel_glass_poet", DisplayName: "Elena Rodriguez", Avatar: avatarElena},
			Content: entity.PostContent{
				Type: entity.ContentQuote,
				Text: "Architecture is a visual art, and the buildings speak for themselves. The interplay of light, shadow, and form creates poetry in three dimensions.",
			},
			Stats:        entity.PostStats{Likes: 324, Comments: 41, Shares: 67},
			Timestamp:    "8h",
			IsLiked:      true,
			IsBookmarked: true,
		},
		{
			ID:     "5",
			Author: entity.Author{Username: "green_building_lab", DisplayName: "Sustainable Design Co.", Avatar: avatarGreen},
			Content: entity.PostContent{
				Type:     entity.ContentImage,
				ImageURL: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=800&h=600&fit=crop",
				ImageAlt: "Green building with living walls and sustainable features",
			},
			Stats:     entity.PostStats{Likes: 892, Comments: 156, Shares: 78},
			Timestamp: "12h",
		},
		{
			ID:     "6",
			Author: entity.Author{Username: "urban_geometry", DisplayName: "David Kim", Avatar: avatarZaha},
			Content: entity.PostContent{
				Type: entity.ContentText,
				Text: "Walking through the financial district at dusk, observing how glass towers transform into vertical light sculptures. Each building tells a story of engineering ambition and design philosophy. The city becomes a living gallery of architectural expression.",
			},
			Stats:     entity.PostStats{Likes: 567, Comments: 83, Shares: 29},
			Timestamp: "1d",
			IsLiked:   true,
		},
	}
}

func seedCategories() []entity.Category {
	return []entity.Category{
		{
			ID:          "1",
			Name:        "Modern Architecture",
			Description: "Contemporary design and innovative structures",
			ImageURL:    "https://images.unsplash.com/photo-1511818966892-d612672e2540?w=400&h=300&fit=crop",
			PostCount:   1247,
		},
		{
			ID:          "2",
			Name:        "Sustainable Design",
			Description: "Green buildings and eco-friendly architecture",
			ImageURL:    "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
			PostCount:   892,
		},
		{
			ID:          "3",
			Name:        "Brutalism",
			Description: "Raw concrete and bold geometric forms",
			ImageURL:    "https://images.unsplash.com/photo-1520637736862-4d197d17c72a?w=400&h=300&fit=crop",
			PostCount:   567,
		},
		{
			ID:          "4",
			Name:        "Urban Planning",
			Description: "City design and urban development",
			ImageURL:    "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=400&h=300&fit=crop",
			PostCount:   789,
		},
		{
			ID:          "5",
			Name:        "Interior Design",
			Description: "Beautiful spaces and functional layouts",
			ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
			PostCount:   1234,
		},
		{
			ID:          "6",
			Name:        "Landscape Architecture",
			Description: "Outdoor spaces and natural integration",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=300&fit=crop",
			PostCount:   456,
		},
	}
}

func seedComments() []entity.Comment {
	return []entity.Comment{
		{
			ID:        "1",
			Author:    entity.Author{Username: "sarah_designer", DisplayName: "Sarah Chen", Avatar: avatarElena},
			Text:      "Absolutely stunning! The way the light plays with the curves is mesmerizing. This is exactly the kind of innovative design that pushes boundaries.",
			Timestamp: "2h ago",
			Likes:     24,
		},
		{
			ID:        "2",
			Author:    entity.Author{Username: "arch_minimalist", DisplayName: "Marcus Webb", Avatar: avatarMarcus},
			Text:      "The integration of form and function here is perfect. Love how the organic shapes create such dynamic spaces.",
			Timestamp: "4h ago",
			Likes:     18,
		},
		{
			ID:        "3",
			Author:    entity.Author{Username: "urban_geometry", DisplayName: "David Kim", Avatar: avatarZaha},
			Text:      "This reminds me of the Guggenheim in Bilbao. The fluid architecture really creates an immersive experience.",
			Timestamp: "6h ago",
			Likes:     12,
		},
	}
}

func seedActivities() []entity.ActivityItem {
	return []entity.ActivityItem{
		{
			ID:        "1",
			Type:      entity.ActivityLike,
			User:      entity.Author{Username: "sarah_designer", DisplayName: "Sarah Chen", Avatar: avatarElena},
			Content:   "liked your post",
			Timestamp: "2m ago",
			PostImage: "https://images.unsplash.com/photo-1511818966892-d612672e2540?w=100&h=100&fit=crop",
		},
		{
			ID:        "2",
			Type:      entity.ActivityComment,
			User:      entity.Author{Username: "arch_minimalist", DisplayName: "Marcus Webb", Avatar: avatarMarcus},
			Content:   `commented: "Amazing design! The use of natural light is perfect."`,
			Timestamp: "15m ago",
			PostImage: "https://images.unsplash.com/photo-1520637736862-4d197d17c72a?w=100&h=100&fit=crop",
		},
		{
			ID:        "3",
			Type:      entity.ActivityFollow,
			User:      entity.Author{Username: "steel_glass_poet", DisplayName: "Elena Rodriguez", Avatar: avatarElena},
			Content:   "started following you",
			Timestamp: "1h ago",
		},
		{
			ID:        "4",
			Type:      entity.ActivityMention,
			User:      entity.Author{Username: "urban_geometry", DisplayName: "David Kim", Avatar: avatarZaha},
			Content:   "mentioned you in a post",
			Timestamp: "2h ago",
			PostImage: "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=100&h=100&fit=crop",
		},
		{
			ID:        "5",
			Type:      entity.ActivityLike,
			User:      entity.Author{Username: "studio_zaha", DisplayName: "Zaha Hadid Architects", Avatar: avatarZaha},
			Content:   "liked your post",
			Timestamp: "3h ago",
			PostImage: "https://images.unsplash.com/photo-1511818966892-d612672e2540?w=100&h=100&fit=crop",
		},
	}
}

func seedProfile() entity.User {
	return entity.User{
		ID:          "1",
		Username:    "evie_sharon",
		DisplayName: "Evie Sharon",
		Avatar:      "https://images.unsplash.com/photo-1494790108755-2616b612ab27?w=400&h=400&fit=crop&crop=face",
		Location:    "Norway",
		Stats:       entity.UserStats{Followers: 34200, Photos: 851, Likes: 947},
		Photos: []string{
			"https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=200&h=200&fit=crop",
			"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=200&h=200&fit=crop",
			"https://images.unsplash.com/photo-1439066615861-d1af74d74000?w=200&h=200&fit=crop",
			"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=200&h=200&fit=crop",
			"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=200&h=200&fit=crop",
		},
	}
}
