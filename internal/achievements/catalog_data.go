package achievements

// curatedAchievements is the hand-written base set. Generated families
// in catalog_generated.go fill the catalog out to 1000+ entries; id
// naming between the two sets is disjoint by construction.
func curatedAchievements() []Achievement {
	return []Achievement{
		// Watching milestones
		ach("watch_1", "First Steps", "Watch your first anime", CategoryWatching, TierBronze, "🎬", atLeast(ReqTotalAnimeCount, 1), 10),
		ach("watch_5", "Getting Started", "Watch 5 anime", CategoryWatching, TierBronze, "🎬", atLeast(ReqTotalAnimeCount, 5), 20),
		ach("watch_10", "Casual Viewer", "Watch 10 anime", CategoryWatching, TierBronze, "📺", atLeast(ReqTotalAnimeCount, 10), 30),
		ach("watch_25", "Anime Enthusiast", "Watch 25 anime", CategoryWatching, TierSilver, "🎭", atLeast(ReqTotalAnimeCount, 25), 50),
		ach("watch_50", "Dedicated Watcher", "Watch 50 anime", CategoryWatching, TierSilver, "🎪", atLeast(ReqTotalAnimeCount, 50), 75),
		ach("watch_100", "Century Club", "Watch 100 anime", CategoryWatching, TierGold, "💯", atLeast(ReqTotalAnimeCount, 100), 100),
		ach("watch_200", "Seasoned Veteran", "Watch 200 anime", CategoryWatching, TierGold, "🎖️", atLeast(ReqTotalAnimeCount, 200), 150),
		ach("watch_300", "Anime Connoisseur", "Watch 300 anime", CategoryWatching, TierPlatinum, "👑", atLeast(ReqTotalAnimeCount, 300), 200),
		ach("watch_500", "Legendary Otaku", "Watch 500 anime", CategoryWatching, TierPlatinum, "⭐", atLeast(ReqTotalAnimeCount, 500), 300),
		ach("watch_750", "Elite Collector", "Watch 750 anime", CategoryWatching, TierDiamond, "💎", atLeast(ReqTotalAnimeCount, 750), 400),
		ach("watch_1000", "The Completionist", "Watch 1000 anime", CategoryWatching, TierDiamond, "🏆", atLeast(ReqTotalAnimeCount, 1000), 500),

		// Episode milestones
		ach("ep_50", "Episode Novice", "Watch 50 episodes", CategoryWatching, TierBronze, "📼", atLeast(ReqEpisodesWatched, 50), 15),
		ach("ep_100", "Episode Hunter", "Watch 100 episodes", CategoryWatching, TierBronze, "📹", atLeast(ReqEpisodesWatched, 100), 25),
		ach("ep_250", "Episode Marathoner", "Watch 250 episodes", CategoryWatching, TierSilver, "🎥", atLeast(ReqEpisodesWatched, 250), 50),
		ach("ep_500", "Episode Addict", "Watch 500 episodes", CategoryWatching, TierSilver, "📡", atLeast(ReqEpisodesWatched, 500), 75),
		ach("ep_1000", "Episode Master", "Watch 1000 episodes", CategoryWatching, TierGold, "🎞️", atLeast(ReqEpisodesWatched, 1000), 100),
		ach("ep_2500", "Episode Legend", "Watch 2500 episodes", CategoryWatching, TierGold, "🎬", atLeast(ReqEpisodesWatched, 2500), 150),
		ach("ep_5000", "Episode Overlord", "Watch 5000 episodes", CategoryWatching, TierPlatinum, "👁️", atLeast(ReqEpisodesWatched, 5000), 250),
		ach("ep_10000", "Episode God", "Watch 10000 episodes", CategoryWatching, TierDiamond, "🌟", atLeast(ReqEpisodesWatched, 10000), 500),

		// Completion
		ach("complete_1", "Mission Complete", "Complete your first anime", CategoryCompletion, TierBronze, "✅", atLeast(ReqCompletedCount, 1), 10),
		ach("complete_5", "Finisher", "Complete 5 anime", CategoryCompletion, TierBronze, "✔️", atLeast(ReqCompletedCount, 5), 25),
		ach("complete_10", "Completion Streak", "Complete 10 anime", CategoryCompletion, TierBronze, "🎯", atLeast(ReqCompletedCount, 10), 40),
		ach("complete_25", "Dedicated Completer", "Complete 25 anime", CategoryCompletion, TierSilver, "🏅", atLeast(ReqCompletedCount, 25), 60),
		ach("complete_50", "Half Century", "Complete 50 anime", CategoryCompletion, TierSilver, "🥈", atLeast(ReqCompletedCount, 50), 90),
		ach("complete_100", "Completion Master", "Complete 100 anime", CategoryCompletion, TierGold, "🥇", atLeast(ReqCompletedCount, 100), 120),
		ach("complete_200", "Serial Finisher", "Complete 200 anime", CategoryCompletion, TierGold, "🏆", atLeast(ReqCompletedCount, 200), 180),
		ach("complete_300", "Completion Virtuoso", "Complete 300 anime", CategoryCompletion, TierPlatinum, "🎖️", atLeast(ReqCompletedCount, 300), 250),
		ach("complete_500", "Completionist Elite", "Complete 500 anime", CategoryCompletion, TierPlatinum, "⭐", atLeast(ReqCompletedCount, 500), 350),
		ach("complete_1000", "Ultimate Finisher", "Complete 1000 anime", CategoryCompletion, TierDiamond, "💫", atLeast(ReqCompletedCount, 1000), 600),

		// Time
		ach("time_1h", "First Hour", "Watch 1 hour of anime", CategoryTime, TierBronze, "⏱️", atLeast(ReqWatchTimeMinutes, 60), 5),
		ach("time_10h", "Ten Hours In", "Watch 10 hours of anime", CategoryTime, TierBronze, "⏲️", atLeast(ReqWatchTimeMinutes, 600), 15),
		ach("time_24h", "Full Day", "Watch 24 hours of anime", CategoryTime, TierBronze, "🕐", atLeast(ReqWatchTimeMinutes, 1440), 30),
		ach("time_week", "Week Watcher", "Watch 1 week (168 hours)", CategoryTime, TierSilver, "📅", atLeast(ReqWatchTimeMinutes, 10080), 75),
		ach("time_month", "Monthly Marathon", "Watch 1 month (720 hours)", CategoryTime, TierGold, "📆", atLeast(ReqWatchTimeMinutes, 43200), 150),
		ach("time_year", "Year of Anime", "Watch 1 year worth (8760 hours)", CategoryTime, TierPlatinum, "🗓️", atLeast(ReqWatchTimeMinutes, 525600), 500),

		// Scores
		ach("score_10_1", "Perfect First", "Give your first 10/10 score", CategoryScores, TierBronze, "🔟", atLeast(ReqPerfectScores, 1), 15),
		ach("score_10_5", "Five Perfect", "Give 5 perfect scores", CategoryScores, TierSilver, "⭐", atLeast(ReqPerfectScores, 5), 35),
		ach("score_10_10", "Perfect Ten", "Give 10 perfect scores", CategoryScores, TierGold, "🌟", atLeast(ReqPerfectScores, 10), 60),
		ach("score_10_25", "Generous Critic", "Give 25 perfect scores", CategoryScores, TierPlatinum, "✨", atLeast(ReqPerfectScores, 25), 100),
		ach("score_10_50", "Perfect Vision", "Give 50 perfect scores", CategoryScores, TierDiamond, "💎", atLeast(ReqPerfectScores, 50), 200),

		ach("mean_5", "Harsh Critic", "Maintain mean score of 5.0", CategoryScores, TierBronze, "😐", atMost(ReqMeanScore, 5.0), 20),
		ach("mean_7", "Balanced Viewer", "Maintain mean score of 7.0", CategoryScores, TierSilver, "⚖️", equals(ReqMeanScore, 7.0), 40),
		ach("mean_8", "Optimistic Watcher", "Maintain mean score of 8.0+", CategoryScores, TierGold, "😊", atLeast(ReqMeanScore, 8.0), 50),
		ach("mean_9", "Everything is Great", "Maintain mean score of 9.0+", CategoryScores, TierPlatinum, "😍", atLeast(ReqMeanScore, 9.0), 100),

		// Genres
		ach("genre_action_10", "Action Fan", "Watch 10 Action anime", CategoryGenres, TierBronze, "💥", genreAtLeast("Action", 10), 20),
		ach("genre_action_50", "Action Addict", "Watch 50 Action anime", CategoryGenres, TierSilver, "⚡", genreAtLeast("Action", 50), 60),
		ach("genre_action_100", "Action Master", "Watch 100 Action anime", CategoryGenres, TierGold, "🔥", genreAtLeast("Action", 100), 120),
		ach("genre_comedy_10", "Comedy Lover", "Watch 10 Comedy anime", CategoryGenres, TierBronze, "😂", genreAtLeast("Comedy", 10), 20),
		ach("genre_comedy_50", "Comedy Connoisseur", "Watch 50 Comedy anime", CategoryGenres, TierSilver, "🤣", genreAtLeast("Comedy", 50), 60),
		ach("genre_comedy_100", "Comedy Expert", "Watch 100 Comedy anime", CategoryGenres, TierGold, "😆", genreAtLeast("Comedy", 100), 120),
		ach("genre_drama_10", "Drama Enthusiast", "Watch 10 Drama anime", CategoryGenres, TierBronze, "🎭", genreAtLeast("Drama", 10), 20),
		ach("genre_drama_50", "Drama Devotee", "Watch 50 Drama anime", CategoryGenres, TierSilver, "🎬", genreAtLeast("Drama", 50), 60),
		ach("genre_drama_100", "Drama Virtuoso", "Watch 100 Drama anime", CategoryGenres, TierGold, "🎪", genreAtLeast("Drama", 100), 120),
		ach("genre_romance_10", "Romantic", "Watch 10 Romance anime", CategoryGenres, TierBronze, "💕", genreAtLeast("Romance", 10), 20),
		ach("genre_romance_50", "Love Expert", "Watch 50 Romance anime", CategoryGenres, TierSilver, "❤️", genreAtLeast("Romance", 50), 60),
		ach("genre_romance_100", "Hopeless Romantic", "Watch 100 Romance anime", CategoryGenres, TierGold, "💖", genreAtLeast("Romance", 100), 120),
		ach("genre_scifi_10", "Sci-Fi Curious", "Watch 10 Sci-Fi anime", CategoryGenres, TierBronze, "🚀", genreAtLeast("Sci-Fi", 10), 20),
		ach("genre_scifi_50", "Sci-Fi Explorer", "Watch 50 Sci-Fi anime", CategoryGenres, TierSilver, "🛸", genreAtLeast("Sci-Fi", 50), 60),
		ach("genre_scifi_100", "Sci-Fi Specialist", "Watch 100 Sci-Fi anime", CategoryGenres, TierGold, "🌌", genreAtLeast("Sci-Fi", 100), 120),
		ach("genre_fantasy_10", "Fantasy Beginner", "Watch 10 Fantasy anime", CategoryGenres, TierBronze, "🧙", genreAtLeast("Fantasy", 10), 20),
		ach("genre_fantasy_50", "Fantasy Adventurer", "Watch 50 Fantasy anime", CategoryGenres, TierSilver, "⚔️", genreAtLeast("Fantasy", 50), 60),
		ach("genre_fantasy_100", "Fantasy Legend", "Watch 100 Fantasy anime", CategoryGenres, TierGold, "🐉", genreAtLeast("Fantasy", 100), 120),
		ach("genre_horror_10", "Horror Initiate", "Watch 10 Horror anime", CategoryGenres, TierBronze, "😱", genreAtLeast("Horror", 10), 20),
		ach("genre_horror_50", "Fearless Viewer", "Watch 50 Horror anime", CategoryGenres, TierSilver, "👻", genreAtLeast("Horror", 50), 60),
		ach("genre_horror_100", "Horror Master", "Watch 100 Horror anime", CategoryGenres, TierGold, "💀", genreAtLeast("Horror", 100), 120),
		ach("genre_mystery_10", "Mystery Seeker", "Watch 10 Mystery anime", CategoryGenres, TierBronze, "🔍", genreAtLeast("Mystery", 10), 20),
		ach("genre_mystery_50", "Detective", "Watch 50 Mystery anime", CategoryGenres, TierSilver, "🕵️", genreAtLeast("Mystery", 50), 60),
		ach("genre_mystery_100", "Master Detective", "Watch 100 Mystery anime", CategoryGenres, TierGold, "🔎", genreAtLeast("Mystery", 100), 120),
		ach("genre_slice_10", "Slice of Life Fan", "Watch 10 Slice of Life anime", CategoryGenres, TierBronze, "🏡", genreAtLeast("Slice of Life", 10), 20),
		ach("genre_slice_50", "Everyday Enjoyer", "Watch 50 Slice of Life anime", CategoryGenres, TierSilver, "☕", genreAtLeast("Slice of Life", 50), 60),
		ach("genre_slice_100", "Life Observer", "Watch 100 Slice of Life anime", CategoryGenres, TierGold, "🌸", genreAtLeast("Slice of Life", 100), 120),
		ach("genre_sports_10", "Sports Newbie", "Watch 10 Sports anime", CategoryGenres, TierBronze, "⚽", genreAtLeast("Sports", 10), 20),
		ach("genre_sports_50", "Sports Enthusiast", "Watch 50 Sports anime", CategoryGenres, TierSilver, "🏀", genreAtLeast("Sports", 50), 60),
		ach("genre_sports_100", "Sports Champion", "Watch 100 Sports anime", CategoryGenres, TierGold, "🏆", genreAtLeast("Sports", 100), 120),
		ach("genre_supernatural_10", "Supernatural Curious", "Watch 10 Supernatural anime", CategoryGenres, TierBronze, "👁️", genreAtLeast("Supernatural", 10), 20),
		ach("genre_supernatural_50", "Supernatural Investigator", "Watch 50 Supernatural anime", CategoryGenres, TierSilver, "🌙", genreAtLeast("Supernatural", 50), 60),
		ach("genre_supernatural_100", "Supernatural Expert", "Watch 100 Supernatural anime", CategoryGenres, TierGold, "🔮", genreAtLeast("Supernatural", 100), 120),
		ach("genre_thriller_10", "Thrill Seeker", "Watch 10 Thriller anime", CategoryGenres, TierBronze, "😰", genreAtLeast("Thriller", 10), 20),
		ach("genre_thriller_50", "Tension Lover", "Watch 50 Thriller anime", CategoryGenres, TierSilver, "😨", genreAtLeast("Thriller", 50), 60),
		ach("genre_thriller_100", "Edge of Your Seat", "Watch 100 Thriller anime", CategoryGenres, TierGold, "😱", genreAtLeast("Thriller", 100), 120),
		ach("genre_mecha_10", "Mecha Pilot", "Watch 10 Mecha anime", CategoryGenres, TierBronze, "🤖", genreAtLeast("Mecha", 10), 20),
		ach("genre_mecha_50", "Mecha Commander", "Watch 50 Mecha anime", CategoryGenres, TierSilver, "🦾", genreAtLeast("Mecha", 50), 60),
		ach("genre_mecha_100", "Mecha Legend", "Watch 100 Mecha anime", CategoryGenres, TierGold, "🚁", genreAtLeast("Mecha", 100), 120),
		ach("genre_music_10", "Music Lover", "Watch 10 Music anime", CategoryGenres, TierBronze, "🎵", genreAtLeast("Music", 10), 20),
		ach("genre_music_50", "Music Enthusiast", "Watch 50 Music anime", CategoryGenres, TierSilver, "🎶", genreAtLeast("Music", 50), 60),
		ach("genre_music_100", "Music Maestro", "Watch 100 Music anime", CategoryGenres, TierGold, "🎸", genreAtLeast("Music", 100), 120),
		ach("genre_psychological_10", "Mind Games", "Watch 10 Psychological anime", CategoryGenres, TierBronze, "🧠", genreAtLeast("Psychological", 10), 20),
		ach("genre_psychological_50", "Deep Thinker", "Watch 50 Psychological anime", CategoryGenres, TierSilver, "💭", genreAtLeast("Psychological", 50), 60),
		ach("genre_psychological_100", "Psychological Master", "Watch 100 Psychological anime", CategoryGenres, TierGold, "🎭", genreAtLeast("Psychological", 100), 120),

		// Studios
		ach("studio_diverse_5", "Studio Explorer", "Watch anime from 5 different studios", CategoryStudios, TierBronze, "🎬", atLeast(ReqStudioCount, 5), 25),
		ach("studio_diverse_10", "Studio Collector", "Watch anime from 10 different studios", CategoryStudios, TierSilver, "🎥", atLeast(ReqStudioCount, 10), 50),
		ach("studio_diverse_25", "Studio Connoisseur", "Watch anime from 25 different studios", CategoryStudios, TierGold, "🎞️", atLeast(ReqStudioCount, 25), 100),
		ach("studio_diverse_50", "Studio Encyclopedia", "Watch anime from 50 different studios", CategoryStudios, TierPlatinum, "📽️", atLeast(ReqStudioCount, 50), 200),
		ach("studio_diverse_100", "Studio Master", "Watch anime from 100 different studios", CategoryStudios, TierDiamond, "🏭", atLeast(ReqStudioCount, 100), 400),

		// Formats
		ach("format_tv_10", "TV Watcher", "Watch 10 TV series", CategoryCollection, TierBronze, "📺", atLeast(ReqFormatTV, 10), 20),
		ach("format_tv_50", "Series Binger", "Watch 50 TV series", CategoryCollection, TierSilver, "📡", atLeast(ReqFormatTV, 50), 60),
		ach("format_tv_100", "TV Addict", "Watch 100 TV series", CategoryCollection, TierGold, "📹", atLeast(ReqFormatTV, 100), 120),
		ach("format_tv_250", "Television Master", "Watch 250 TV series", CategoryCollection, TierPlatinum, "🖥️", atLeast(ReqFormatTV, 250), 250),
		ach("format_movie_5", "Movie Goer", "Watch 5 anime movies", CategoryCollection, TierBronze, "🎬", atLeast(ReqFormatMovie, 5), 15),
		ach("format_movie_25", "Film Buff", "Watch 25 anime movies", CategoryCollection, TierSilver, "🎞️", atLeast(ReqFormatMovie, 25), 50),
		ach("format_movie_50", "Cinema Lover", "Watch 50 anime movies", CategoryCollection, TierGold, "🎥", atLeast(ReqFormatMovie, 50), 100),
		ach("format_movie_100", "Movie Master", "Watch 100 anime movies", CategoryCollection, TierPlatinum, "🎪", atLeast(ReqFormatMovie, 100), 200),
		ach("format_ova_5", "OVA Discoverer", "Watch 5 OVAs", CategoryCollection, TierBronze, "💿", atLeast(ReqFormatOVA, 5), 15),
		ach("format_ova_25", "OVA Enthusiast", "Watch 25 OVAs", CategoryCollection, TierSilver, "📀", atLeast(ReqFormatOVA, 25), 50),
		ach("format_ova_50", "OVA Collector", "Watch 50 OVAs", CategoryCollection, TierGold, "💽", atLeast(ReqFormatOVA, 50), 100),
		ach("format_special_10", "Special Hunter", "Watch 10 specials", CategoryCollection, TierBronze, "🎁", atLeast(ReqFormatSpecial, 10), 20),
		ach("format_special_50", "Special Collector", "Watch 50 specials", CategoryCollection, TierSilver, "🎉", atLeast(ReqFormatSpecial, 50), 60),

		// Dedication
		ach("rewatch_1", "Worth Rewatching", "Rewatch an anime", CategoryDedication, TierBronze, "🔄", atLeast(ReqRewatches, 1), 25),
		ach("rewatch_5", "Nostalgia Lover", "Rewatch 5 anime", CategoryDedication, TierSilver, "🔁", atLeast(ReqRewatches, 5), 60),
		ach("rewatch_10", "Serial Rewatcher", "Rewatch 10 anime", CategoryDedication, TierGold, "♻️", atLeast(ReqRewatches, 10), 120),
		ach("rewatch_25", "Rewatch Master", "Rewatch 25 anime", CategoryDedication, TierPlatinum, "🔂", atLeast(ReqRewatches, 25), 250),
		ach("planning_10", "Planning Ahead", "Have 10 anime in your plan to watch", CategoryDedication, TierBronze, "📋", atLeast(ReqPlanningCount, 10), 15),
		ach("planning_50", "Ambitious Planner", "Have 50 anime in your plan to watch", CategoryDedication, TierSilver, "📝", atLeast(ReqPlanningCount, 50), 40),
		ach("planning_100", "Endless Backlog", "Have 100 anime in your plan to watch", CategoryDedication, TierGold, "📚", atLeast(ReqPlanningCount, 100), 80),
		ach("planning_250", "Eternal Planning", "Have 250 anime in your plan to watch", CategoryDedication, TierPlatinum, "📖", atLeast(ReqPlanningCount, 250), 150),
		ach("current_5", "Multitasker", "Watch 5 anime simultaneously", CategoryDedication, TierBronze, "📱", atLeast(ReqWatchingCount, 5), 20),
		ach("current_10", "Juggler", "Watch 10 anime simultaneously", CategoryDedication, TierSilver, "🤹", atLeast(ReqWatchingCount, 10), 50),
		ach("current_20", "Master Juggler", "Watch 20 anime simultaneously", CategoryDedication, TierGold, "🎪", atLeast(ReqWatchingCount, 20), 100),

		// Seasonal
		ach("seasonal_current_5", "Seasonal Viewer", "Watch 5 currently airing anime", CategorySeasonal, TierBronze, "📅", atLeast(ReqSeasonalCurrent, 5), 25),
		ach("seasonal_current_10", "Seasonal Follower", "Watch 10 currently airing anime", CategorySeasonal, TierSilver, "🗓️", atLeast(ReqSeasonalCurrent, 10), 50),
		ach("seasonal_current_15", "Seasonal Addict", "Watch 15 currently airing anime", CategorySeasonal, TierGold, "📆", atLeast(ReqSeasonalCurrent, 15), 100),
		ach("seasonal_current_25", "Seasonal Master", "Watch 25 currently airing anime", CategorySeasonal, TierPlatinum, "🌸", atLeast(ReqSeasonalCurrent, 25), 200),

		// Special and hidden
		ach("drop_master", "Selective Viewer", "Drop 50 anime (you know what you like)", CategorySpecial, TierSilver, "🗑️", atLeast(ReqDroppedCount, 50), 30),
		hidden(ach("no_drops", "Never Give Up", "Complete 50 anime without dropping any", CategorySpecial, TierGold, "💪", equals(ReqDroppedCount, 0), 100)),
		ach("pause_master", "On Hold Specialist", "Have 25 anime on hold", CategorySpecial, TierBronze, "⏸️", atLeast(ReqPausedCount, 25), 20),
		ach("year_span_5", "Time Traveler", "Watch anime spanning 5 different decades", CategorySpecial, TierSilver, "🕰️", atLeast(ReqYearSpan, 5), 60),
		ach("year_span_7", "Anime Historian", "Watch anime spanning 7 different decades", CategorySpecial, TierGold, "📜", atLeast(ReqYearSpan, 7), 120),
		ach("favorites_10", "Favorites Curator", "Add 10 favorites", CategorySpecial, TierBronze, "⭐", atLeast(ReqFavoritesCount, 10), 30),
		ach("favorites_25", "Favorites Collector", "Add 25 favorites", CategorySpecial, TierSilver, "🌟", atLeast(ReqFavoritesCount, 25), 60),
		ach("favorites_50", "Favorites Master", "Add 50 favorites", CategorySpecial, TierGold, "✨", atLeast(ReqFavoritesCount, 50), 120),

		// Social
		ach("activity_100", "Active Member", "Log 100 activities", CategorySocial, TierBronze, "📊", atLeast(ReqActivityCount, 100), 30),
		ach("activity_500", "Very Active", "Log 500 activities", CategorySocial, TierSilver, "📈", atLeast(ReqActivityCount, 500), 75),
		ach("activity_1000", "Hyper Active", "Log 1000 activities", CategorySocial, TierGold, "📉", atLeast(ReqActivityCount, 1000), 150),

		// Country of origin
		ach("country_japan_50", "Japan Lover", "Watch 50 Japanese anime", CategoryCollection, TierBronze, "🇯🇵", atLeast(ReqCountryJapan, 50), 40),
		ach("country_japan_100", "Japanophile", "Watch 100 Japanese anime", CategoryCollection, TierSilver, "🗾", atLeast(ReqCountryJapan, 100), 80),
		ach("country_china_10", "Donghua Explorer", "Watch 10 Chinese anime", CategoryCollection, TierBronze, "🇨🇳", atLeast(ReqCountryChina, 10), 30),
		ach("country_china_25", "Donghua Fan", "Watch 25 Chinese anime", CategoryCollection, TierSilver, "🐉", atLeast(ReqCountryChina, 25), 60),
		ach("country_korea_10", "Aeni Explorer", "Watch 10 Korean anime", CategoryCollection, TierBronze, "🇰🇷", atLeast(ReqCountryKorea, 10), 30),
		ach("country_korea_25", "Aeni Fan", "Watch 25 Korean anime", CategoryCollection, TierSilver, "🏯", atLeast(ReqCountryKorea, 25), 60),

		// Milestones
		ach("milestone_first_favorite", "First Love", "Add your first favorite anime", CategoryMilestones, TierBronze, "💝", atLeast(ReqFavoritesCount, 1), 15),
		hidden(ach("milestone_100_ep_single", "Long Runner", "Complete an anime with 100+ episodes", CategoryMilestones, TierSilver, "🏃", atLeast(ReqEpisodesWatched, 100), 50)),
		hidden(ach("milestone_same_day", "Speed Demon", "Complete an anime in the same day you started", CategoryMilestones, TierGold, "⚡", atLeast(ReqSameDayCompletion, 1), 75)),
	}
}
