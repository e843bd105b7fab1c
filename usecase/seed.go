package usecase

import (
	"time"

	"streamtube/domain/model"
)

// Built-in catalog used until remote data arrives. Fresh slices are returned
// so a store never shares seed backing arrays with another store.

func seedTime(daysAgo int) time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
}

func SeedChannels() []model.Channel {
	return []model.Channel{
		{
			ID:          "channel-1",
			Name:        "TechVision",
			Description: "Deep dives into programming, hardware and the tools behind the web.",
			Avatar:      "https://i.pravatar.cc/150?u=techvision",
			Banner:      "https://picsum.photos/seed/techvision/1280/320",
			Subscribers: 245000,
			VideoCount:  2,
			CreatedAt:   seedTime(900),
			UserID:      "user-1",
		},
		{
			ID:          "channel-2",
			Name:        "Wanderlust Diaries",
			Description: "Travel films from every corner of the planet.",
			Avatar:      "https://i.pravatar.cc/150?u=wanderlust",
			Banner:      "https://picsum.photos/seed/wanderlust/1280/320",
			Subscribers: 89000,
			VideoCount:  2,
			CreatedAt:   seedTime(650),
			UserID:      "user-2",
		},
		{
			ID:          "channel-3",
			Name:        "Groove Station",
			Description: "Live sessions, mixes and music production breakdowns.",
			Avatar:      "https://i.pravatar.cc/150?u=groove",
			Banner:      "https://picsum.photos/seed/groove/1280/320",
			Subscribers: 412000,
			VideoCount:  2,
			CreatedAt:   seedTime(1200),
			UserID:      "user-3",
		},
		{
			ID:          "channel-4",
			Name:        "Pixel Arena",
			Description: "Game reviews, speedruns and esports coverage.",
			Avatar:      "https://i.pravatar.cc/150?u=pixelarena",
			Banner:      "https://picsum.photos/seed/pixelarena/1280/320",
			Subscribers: 178000,
			VideoCount:  2,
			CreatedAt:   seedTime(400),
			UserID:      "user-4",
		},
	}
}

func SeedVideos() []model.Video {
	return []model.Video{
		{
			ID:            "video-1",
			Title:         "Building a Web Server From Scratch",
			Description:   "We implement an HTTP server step by step and benchmark it against the big ones.",
			ThumbnailURL:  "https://picsum.photos/seed/video-1/640/360",
			VideoURL:      "https://example.com/videos/video-1.mp4",
			Duration:      1265,
			Views:         48211,
			Likes:         3120,
			Dislikes:      45,
			CreatedAt:     seedTime(3),
			ChannelID:     "channel-1",
			ChannelName:   "TechVision",
			ChannelAvatar: "https://i.pravatar.cc/150?u=techvision",
			Tags:          []string{"programming", "http", "backend"},
			Category:      "Technology",
		},
		{
			ID:            "video-2",
			Title:         "Why Your Database Is Slow",
			Description:   "Indexes, query plans and the mistakes everyone makes at least once.",
			ThumbnailURL:  "https://picsum.photos/seed/video-2/640/360",
			VideoURL:      "https://example.com/videos/video-2.mp4",
			Duration:      987,
			Views:         102554,
			Likes:         8453,
			Dislikes:      120,
			CreatedAt:     seedTime(12),
			ChannelID:     "channel-1",
			ChannelName:   "TechVision",
			ChannelAvatar: "https://i.pravatar.cc/150?u=techvision",
			Tags:          []string{"database", "sql", "performance"},
			Category:      "Education",
		},
		{
			ID:            "video-3",
			Title:         "72 Hours in Kyoto",
			Description:   "Temples at dawn, markets at midnight. A short film about slowing down.",
			ThumbnailURL:  "https://picsum.photos/seed/video-3/640/360",
			VideoURL:      "https://example.com/videos/video-3.mp4",
			Duration:      734,
			Views:         215890,
			Likes:         18760,
			Dislikes:      210,
			CreatedAt:     seedTime(7),
			ChannelID:     "channel-2",
			ChannelName:   "Wanderlust Diaries",
			ChannelAvatar: "https://i.pravatar.cc/150?u=wanderlust",
			Tags:          []string{"japan", "travel", "film"},
			Category:      "Travel",
		},
		{
			ID:            "video-4",
			Title:         "Packing for a Year on the Road",
			Description:   "Everything in one 40L bag. The list, the regrets, the essentials.",
			ThumbnailURL:  "https://picsum.photos/seed/video-4/640/360",
			VideoURL:      "https://example.com/videos/video-4.mp4",
			Duration:      612,
			Views:         67340,
			Likes:         5230,
			Dislikes:      89,
			CreatedAt:     seedTime(30),
			ChannelID:     "channel-2",
			ChannelName:   "Wanderlust Diaries",
			ChannelAvatar: "https://i.pravatar.cc/150?u=wanderlust",
			Tags:          []string{"travel", "minimalism"},
			Category:      "Travel",
		},
		{
			ID:            "video-5",
			Title:         "Lo-Fi Beats Live Session #42",
			Description:   "Two hours of unreleased tracks straight from the studio.",
			ThumbnailURL:  "https://picsum.photos/seed/video-5/640/360",
			VideoURL:      "https://example.com/videos/video-5.mp4",
			Duration:      7204,
			Views:         890123,
			Likes:         45210,
			Dislikes:      320,
			CreatedAt:     seedTime(2),
			ChannelID:     "channel-3",
			ChannelName:   "Groove Station",
			ChannelAvatar: "https://i.pravatar.cc/150?u=groove",
			Tags:          []string{"lofi", "music", "live"},
			Category:      "Music",
		},
		{
			ID:            "video-6",
			Title:         "How We Mixed Our Latest Track",
			Description:   "A full mixing session with every plugin chain explained.",
			ThumbnailURL:  "https://picsum.photos/seed/video-6/640/360",
			VideoURL:      "https://example.com/videos/video-6.mp4",
			Duration:      1890,
			Views:         34210,
			Likes:         2890,
			Dislikes:      34,
			CreatedAt:     seedTime(18),
			ChannelID:     "channel-3",
			ChannelName:   "Groove Station",
			ChannelAvatar: "https://i.pravatar.cc/150?u=groove",
			Tags:          []string{"music", "production", "mixing"},
			Category:      "Music",
		},
		{
			ID:            "video-7",
			Title:         "Speedrunning the Impossible Level",
			Description:   "After 4000 attempts, a new world record. Full run with commentary.",
			ThumbnailURL:  "https://picsum.photos/seed/video-7/640/360",
			VideoURL:      "https://example.com/videos/video-7.mp4",
			Duration:      1456,
			Views:         523876,
			Likes:         39870,
			Dislikes:      540,
			CreatedAt:     seedTime(5),
			ChannelID:     "channel-4",
			ChannelName:   "Pixel Arena",
			ChannelAvatar: "https://i.pravatar.cc/150?u=pixelarena",
			Tags:          []string{"gaming", "speedrun", "record"},
			Category:      "Gaming",
		},
		{
			ID:            "video-8",
			Title:         "The Best Indie Games You Missed This Year",
			Description:   "Ten gems that flew under the radar, ranked.",
			ThumbnailURL:  "https://picsum.photos/seed/video-8/640/360",
			VideoURL:      "https://example.com/videos/video-8.mp4",
			Duration:      1123,
			Views:         98450,
			Likes:         7650,
			Dislikes:      98,
			CreatedAt:     seedTime(21),
			ChannelID:     "channel-4",
			ChannelName:   "Pixel Arena",
			ChannelAvatar: "https://i.pravatar.cc/150?u=pixelarena",
			Tags:          []string{"gaming", "indie", "review"},
			Category:      "Gaming",
		},
	}
}

func SeedComments() []model.Comment {
	return []model.Comment{
		{
			ID:         "comment-1",
			VideoID:    "video-1",
			UserID:     "user-5",
			Username:   "devdiana",
			UserAvatar: "https://i.pravatar.cc/150?u=devdiana",
			Content:    "The benchmark section alone was worth the watch. Subscribed!",
			Likes:      214,
			CreatedAt:  seedTime(2),
			Replies: []model.Comment{
				{
					ID:         "comment-1-1",
					VideoID:    "video-1",
					UserID:     "user-1",
					Username:   "TechVision",
					UserAvatar: "https://i.pravatar.cc/150?u=techvision",
					Content:    "Thanks! Part two covers TLS termination.",
					Likes:      87,
					CreatedAt:  seedTime(1),
				},
			},
		},
		{
			ID:         "comment-2",
			VideoID:    "video-5",
			UserID:     "user-6",
			Username:   "nightowl",
			UserAvatar: "https://i.pravatar.cc/150?u=nightowl",
			Content:    "This session got me through finals week.",
			Likes:      982,
			CreatedAt:  seedTime(1),
		},
		{
			ID:         "comment-3",
			VideoID:    "video-3",
			UserID:     "user-7",
			Username:   "roamfree",
			UserAvatar: "https://i.pravatar.cc/150?u=roamfree",
			Content:    "Kyoto at dawn is unreal. Which district is the market scene from?",
			Likes:      156,
			CreatedAt:  seedTime(4),
		},
	}
}
