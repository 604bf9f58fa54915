package achievements

import (
	"fmt"
	"strings"
)

// generatedAchievements programmatically sweeps threshold families to
// fill the catalog out past a thousand entries. Each family keeps its
// own id namespace so curated and generated entries never collide.
func generatedAchievements() []Achievement {
	var out []Achievement

	// Incremental watching thresholds between the curated milestones.
	for _, count := range []float64{15, 20, 30, 40, 60, 75, 80, 90, 120, 150, 175, 250, 350, 400, 450, 600, 700, 800, 900, 1200, 1500, 2000} {
		out = append(out, ach(
			fmt.Sprintf("watch_%d", int(count)),
			fmt.Sprintf("%d Anime Watched", int(count)),
			fmt.Sprintf("Watch %d anime", int(count)),
			CategoryWatching, ladder(count, 100, 300, 600, 1000), "📺",
			atLeast(ReqTotalAnimeCount, count), count*0.5))
	}

	for _, count := range []float64{150, 200, 300, 400, 600, 750, 1250, 1500, 1750, 2000, 3000, 3500, 4000, 6000, 7000, 8000, 9000} {
		out = append(out, ach(
			fmt.Sprintf("ep_%d", int(count)),
			fmt.Sprintf("%d Episodes", int(count)),
			fmt.Sprintf("Watch %d episodes", int(count)),
			CategoryWatching, ladder(count, 500, 1500, 3500, 7000), "📼",
			atLeast(ReqEpisodesWatched, count), count*0.1))
	}

	for _, count := range []float64{15, 20, 30, 40, 60, 75, 80, 90, 120, 150, 175, 250, 350, 400, 450, 600, 700, 800, 900} {
		out = append(out, ach(
			fmt.Sprintf("complete_%d", int(count)),
			fmt.Sprintf("%d Completed", int(count)),
			fmt.Sprintf("Complete %d anime", int(count)),
			CategoryCompletion, ladder(count, 50, 150, 350, 600), "✅",
			atLeast(ReqCompletedCount, count), count*0.8))
	}

	timeMarks := []struct {
		hours float64
		label string
	}{
		{2, "Two Hours"}, {5, "Five Hours"}, {12, "Half Day"}, {48, "Two Days"},
		{72, "Three Days"}, {100, "Hundred Hours"}, {200, "Two Hundred Hours"},
		{300, "Three Hundred Hours"}, {500, "Five Hundred Hours"},
		{1000, "Thousand Hours"}, {2000, "Two Thousand Hours"},
		{3000, "Three Thousand Hours"}, {5000, "Five Thousand Hours"},
	}
	for _, mark := range timeMarks {
		out = append(out, ach(
			fmt.Sprintf("time_%dh", int(mark.hours)),
			mark.label,
			fmt.Sprintf("Watch %d hours of anime", int(mark.hours)),
			CategoryTime, ladder(mark.hours, 24, 168, 1000, 3000), "⏰",
			atLeast(ReqWatchTimeMinutes, mark.hours*60), mark.hours*0.5))
	}

	genreIcons := map[string]string{
		"Action": "💥", "Comedy": "😂", "Drama": "🎭", "Romance": "💕",
		"Sci-Fi": "🚀", "Fantasy": "🧙", "Horror": "😱", "Mystery": "🔍",
		"Slice of Life": "🏡", "Sports": "⚽", "Supernatural": "👁️",
		"Thriller": "😰", "Mecha": "🤖", "Music": "🎵", "Psychological": "🧠",
	}
	genres := []string{
		"Action", "Comedy", "Drama", "Romance", "Sci-Fi", "Fantasy", "Horror",
		"Mystery", "Slice of Life", "Sports", "Supernatural", "Thriller",
		"Mecha", "Music", "Psychological",
	}
	for _, genre := range genres {
		for _, threshold := range []float64{5, 15, 20, 25, 30, 40, 60, 75, 80, 120, 150, 200, 250, 300} {
			slug := strings.ReplaceAll(strings.ToLower(genre), " ", "_")
			out = append(out, ach(
				fmt.Sprintf("genre_%s_%d", slug, int(threshold)),
				fmt.Sprintf("%s %d", genre, int(threshold)),
				fmt.Sprintf("Watch %d %s anime", int(threshold), genre),
				CategoryGenres, ladder(threshold, 20, 60, 150, 250), genreIcons[genre],
				genreAtLeast(genre, threshold), threshold*1.2))
		}
	}

	for _, count := range []float64{15, 20, 30, 40, 60, 75, 80, 90, 120, 150} {
		out = append(out, ach(
			fmt.Sprintf("studio_diverse_%d", int(count)),
			fmt.Sprintf("%d Studios", int(count)),
			fmt.Sprintf("Watch anime from %d different studios", int(count)),
			CategoryStudios, ladder(count, 20, 50, 100, 130), "🎬",
			atLeast(ReqStudioCount, count), count*2))
	}

	for _, count := range []float64{3, 7, 15, 20, 30, 40, 50, 75, 100} {
		out = append(out, ach(
			fmt.Sprintf("rewatch_%d", int(count)),
			fmt.Sprintf("%d Rewatches", int(count)),
			fmt.Sprintf("Rewatch anime %d times total", int(count)),
			CategoryDedication, ladder(count, 10, 25, 50, 80), "🔄",
			atLeast(ReqRewatches, count), count*3))
	}

	for _, count := range []float64{25, 150, 200, 300, 500, 750, 1000} {
		out = append(out, ach(
			fmt.Sprintf("planning_%d", int(count)),
			fmt.Sprintf("%d Planned", int(count)),
			fmt.Sprintf("Have %d anime in plan to watch", int(count)),
			CategoryDedication, ladder(count, 100, 250, 500, 800), "📋",
			atLeast(ReqPlanningCount, count), count*0.3))
	}

	for _, count := range []float64{3, 7, 15, 25, 30, 40, 50} {
		out = append(out, ach(
			fmt.Sprintf("current_%d", int(count)),
			fmt.Sprintf("Watching %d", int(count)),
			fmt.Sprintf("Watch %d anime at the same time", int(count)),
			CategoryDedication, ladder(count, 10, 20, 35, 45), "🎭",
			atLeast(ReqWatchingCount, count), count*4))
	}

	for _, count := range []float64{10, 25, 75, 100, 150, 200, 300} {
		out = append(out, ach(
			fmt.Sprintf("drop_%d", int(count)),
			fmt.Sprintf("%d Drops", int(count)),
			fmt.Sprintf("Drop %d anime (picky viewer!)", int(count)),
			CategorySpecial, ladder(count, 50, 100, 200, 250), "🗑️",
			atLeast(ReqDroppedCount, count), count*0.5))
	}

	for _, count := range []float64{5, 10, 15, 30, 50, 75, 100} {
		out = append(out, ach(
			fmt.Sprintf("paused_%d", int(count)),
			fmt.Sprintf("%d On Hold", int(count)),
			fmt.Sprintf("Have %d anime on hold", int(count)),
			CategoryDedication, ladder(count, 15, 40, 70, 90), "⏸️",
			atLeast(ReqPausedCount, count), count*1.5))
	}

	for _, count := range []float64{3, 7, 12, 18, 20, 30, 40, 50} {
		out = append(out, ach(
			fmt.Sprintf("seasonal_%d", int(count)),
			fmt.Sprintf("%d Seasonal Shows", int(count)),
			fmt.Sprintf("Watch %d currently airing anime", int(count)),
			CategorySeasonal, ladder(count, 10, 20, 35, 45), "🌸",
			atLeast(ReqSeasonalCurrent, count), count*5))
	}

	for _, count := range []float64{3, 5, 15, 20, 30, 40, 75, 100, 150, 200} {
		out = append(out, ach(
			fmt.Sprintf("favorites_%d", int(count)),
			fmt.Sprintf("%d Favorites", int(count)),
			fmt.Sprintf("Add %d anime to favorites", int(count)),
			CategorySpecial, ladder(count, 10, 30, 75, 125), "⭐",
			atLeast(ReqFavoritesCount, count), count*2))
	}

	for _, count := range []float64{50, 200, 300, 750, 1500, 2000, 3000, 5000} {
		out = append(out, ach(
			fmt.Sprintf("activity_%d", int(count)),
			fmt.Sprintf("%d Activities", int(count)),
			fmt.Sprintf("Log %d activities", int(count)),
			CategorySocial, ladder(count, 500, 1000, 2500, 4000), "📊",
			atLeast(ReqActivityCount, count), count*0.1))
	}

	for _, count := range []float64{3, 7, 15, 20, 30, 40, 75, 100} {
		out = append(out, ach(
			fmt.Sprintf("perfect_%d", int(count)),
			fmt.Sprintf("%d Perfect Scores", int(count)),
			fmt.Sprintf("Give %d anime a 10/10 rating", int(count)),
			CategoryScores, ladder(count, 10, 25, 50, 80), "10️⃣",
			atLeast(ReqPerfectScores, count), count*3))
	}

	for _, count := range []float64{5, 15, 25, 30, 40, 60, 75, 120, 150, 200, 300, 400, 500} {
		out = append(out, ach(
			fmt.Sprintf("tv_%d", int(count)),
			fmt.Sprintf("%d TV Series", int(count)),
			fmt.Sprintf("Watch %d TV anime series", int(count)),
			CategoryCollection, ladder(count, 30, 100, 250, 400), "📺",
			atLeast(ReqFormatTV, count), count))
	}

	for _, count := range []float64{3, 10, 15, 20, 30, 40, 60, 75, 120, 150} {
		out = append(out, ach(
			fmt.Sprintf("movie_%d", int(count)),
			fmt.Sprintf("%d Movies", int(count)),
			fmt.Sprintf("Watch %d anime movies", int(count)),
			CategoryCollection, ladder(count, 15, 40, 75, 100), "🎬",
			atLeast(ReqFormatMovie, count), count*2))
	}

	for _, count := range []float64{3, 10, 15, 20, 30, 40, 60, 75, 100} {
		out = append(out, ach(
			fmt.Sprintf("ova_%d", int(count)),
			fmt.Sprintf("%d OVAs", int(count)),
			fmt.Sprintf("Watch %d OVA releases", int(count)),
			CategoryCollection, ladder(count, 15, 35, 65, 85), "💿",
			atLeast(ReqFormatOVA, count), count*1.5))
	}

	for _, count := range []float64{5, 15, 25, 40, 60, 80, 100, 150} {
		out = append(out, ach(
			fmt.Sprintf("special_%d", int(count)),
			fmt.Sprintf("%d Specials", int(count)),
			fmt.Sprintf("Watch %d special episodes", int(count)),
			CategoryCollection, ladder(count, 20, 50, 90, 120), "🎁",
			atLeast(ReqFormatSpecial, count), count*1.2))
	}

	for _, count := range []float64{25, 75, 150, 200, 300, 400, 500, 750, 1000} {
		out = append(out, ach(
			fmt.Sprintf("japan_%d", int(count)),
			fmt.Sprintf("%d Japanese Anime", int(count)),
			fmt.Sprintf("Watch %d anime from Japan", int(count)),
			CategoryCollection, ladder(count, 100, 250, 500, 800), "🇯🇵",
			atLeast(ReqCountryJapan, count), count*0.5))
	}

	for _, count := range []float64{5, 15, 30, 50, 75, 100, 150, 200} {
		out = append(out, ach(
			fmt.Sprintf("china_%d", int(count)),
			fmt.Sprintf("%d Donghua", int(count)),
			fmt.Sprintf("Watch %d Chinese anime (Donghua)", int(count)),
			CategoryCollection, ladder(count, 20, 50, 100, 150), "🇨🇳",
			atLeast(ReqCountryChina, count), count*2))
	}

	for _, count := range []float64{5, 15, 30, 50, 75, 100, 150} {
		out = append(out, ach(
			fmt.Sprintf("korea_%d", int(count)),
			fmt.Sprintf("%d Aeni", int(count)),
			fmt.Sprintf("Watch %d Korean anime (Aeni)", int(count)),
			CategoryCollection, ladder(count, 20, 50, 100, 125), "🇰🇷",
			atLeast(ReqCountryKorea, count), count*2.5))
	}

	for _, decades := range []float64{3, 4, 6, 8, 9, 10} {
		out = append(out, ach(
			fmt.Sprintf("year_span_%d", int(decades)),
			fmt.Sprintf("%d Decades Spanned", int(decades)),
			fmt.Sprintf("Watch anime from %d different decades", int(decades)),
			CategorySpecial, ladder(decades, 5, 7, 9, 10), "🕰️",
			atLeast(ReqYearSpan, decades), decades*30))
	}

	for _, count := range []float64{3, 7, 12, 18, 22, 27, 33, 37, 42, 48, 55, 65, 70, 85, 95, 110, 130, 140, 160, 180, 190, 220, 240, 260, 280, 320, 340, 360, 380, 420, 480, 520, 550, 650, 850, 950, 1100, 1300, 1400, 1600, 1700, 1800, 1900, 2500, 3000, 3500, 4000, 5000} {
		out = append(out, ach(
			fmt.Sprintf("watch_milestone_%d", int(count)),
			fmt.Sprintf("%d Shows", int(count)),
			fmt.Sprintf("Reach %d anime in your list", int(count)),
			CategoryWatching, ladder(count, 100, 300, 600, 1000), "🎯",
			atLeast(ReqTotalAnimeCount, count), count*0.6))
	}

	for _, count := range []float64{75, 125, 175, 225, 275, 350, 450, 550, 650, 850, 950, 1100, 1300, 1400, 1600, 1800, 2200, 2400, 2600, 2800, 3200, 3600, 4200, 4500, 4800, 5500, 6500, 7500, 8500, 9500, 11000, 12000, 15000, 20000} {
		out = append(out, ach(
			fmt.Sprintf("episode_milestone_%d", int(count)),
			fmt.Sprintf("%d Episodes", int(count)),
			fmt.Sprintf("Watch %d total episodes", int(count)),
			CategoryWatching, ladder(count, 500, 1500, 3500, 7000), "🎞️",
			atLeast(ReqEpisodesWatched, count), count*0.15))
	}

	for _, count := range []float64{3, 7, 12, 18, 22, 27, 33, 37, 42, 48, 55, 65, 70, 85, 95, 110, 130, 140, 160, 180, 190, 220, 240, 260, 280, 320, 340, 360, 380, 420, 480, 520, 550, 650, 750, 850} {
		out = append(out, ach(
			fmt.Sprintf("completed_milestone_%d", int(count)),
			fmt.Sprintf("%d Finished", int(count)),
			fmt.Sprintf("Complete %d anime series", int(count)),
			CategoryCompletion, ladder(count, 50, 150, 350, 600), "🏁",
			atLeast(ReqCompletedCount, count), count*0.9))
	}

	powerLevels := []struct {
		count float64
		name  string
		desc  string
		tier  Tier
		icon  string
	}{
		{2, "Newbie", "Just getting started", TierBronze, "👶"},
		{4, "Beginner", "Learning the ropes", TierBronze, "🌱"},
		{6, "Apprentice", "Making progress", TierBronze, "📖"},
		{8, "Student", "Studying hard", TierBronze, "🎓"},
		{13, "Rookie", "Getting serious", TierBronze, "⭐"},
		{17, "Regular", "Consistent viewer", TierBronze, "👤"},
		{21, "Intermediate", "Halfway there", TierSilver, "📊"},
		{26, "Skilled", "Building expertise", TierSilver, "🎯"},
		{31, "Advanced", "Advanced level", TierSilver, "🏅"},
		{36, "Expert", "Expert status", TierSilver, "💎"},
		{41, "Professional", "Pro level viewer", TierSilver, "🎖️"},
		{46, "Master", "Mastery achieved", TierGold, "👑"},
		{51, "Grandmaster", "Grandmaster rank", TierGold, "🏆"},
		{56, "Elite", "Elite status", TierGold, "⚡"},
		{61, "Champion", "Champion tier", TierGold, "🥇"},
		{66, "Hero", "Hero of anime", TierGold, "🦸"},
		{71, "Legend", "Legendary viewer", TierPlatinum, "🌟"},
		{76, "Mythic", "Mythic level", TierPlatinum, "🔮"},
		{81, "Divine", "Divine rank", TierPlatinum, "✨"},
		{86, "Immortal", "Immortal status", TierPlatinum, "♾️"},
		{91, "Godlike", "Godlike level", TierPlatinum, "🌈"},
		{96, "Supreme", "Supreme being", TierDiamond, "👑"},
		{101, "Cosmic", "Cosmic level", TierDiamond, "🌌"},
		{111, "Transcendent", "Beyond mortal", TierDiamond, "🎆"},
		{121, "Omnipotent", "All-powerful", TierDiamond, "💫"},
	}
	for _, level := range powerLevels {
		out = append(out, ach(
			fmt.Sprintf("power_%d", int(level.count)),
			level.name,
			fmt.Sprintf("%s (%d anime)", level.desc, int(level.count)),
			CategoryMilestones, level.tier, level.icon,
			atLeast(ReqTotalAnimeCount, level.count), level.count*5))
	}

	bingeNames := []struct {
		count float64
		name  string
		tier  Tier
	}{
		{2, "Weekend Warrior", TierBronze}, {4, "Night Owl", TierBronze},
		{6, "Binge Starter", TierBronze}, {8, "Marathon Runner", TierSilver},
		{11, "Speed Watcher", TierSilver}, {14, "Rapid Fire", TierSilver},
		{16, "Lightning Speed", TierGold}, {19, "Unstoppable", TierGold},
		{23, "Binge Legend", TierGold}, {28, "No Sleep Squad", TierPlatinum},
		{32, "Marathon God", TierPlatinum}, {35, "Infinity Watcher", TierDiamond},
	}
	for _, binge := range bingeNames {
		out = append(out, ach(
			fmt.Sprintf("binge_%d", int(binge.count)),
			binge.name,
			fmt.Sprintf("Watch %d anime", int(binge.count)),
			CategoryMilestones, binge.tier, "🎬",
			atLeast(ReqCompletedCount, binge.count), binge.count*6))
	}

	collectorTypes := []struct {
		count float64
		name  string
		tier  Tier
	}{
		{11, "Casual Collector", TierBronze}, {24, "Dedicated Collector", TierSilver},
		{44, "Serious Collector", TierSilver}, {64, "Obsessive Collector", TierGold},
		{88, "Ultimate Collector", TierGold}, {99, "Perfect Collector", TierPlatinum},
		{123, "Legendary Collector", TierPlatinum}, {155, "Mythical Collector", TierDiamond},
	}
	for _, col := range collectorTypes {
		out = append(out, ach(
			fmt.Sprintf("collector_%d", int(col.count)),
			col.name,
			fmt.Sprintf("Collect %d anime in your list", int(col.count)),
			CategoryCollection, col.tier, "🎁",
			atLeast(ReqTotalAnimeCount, col.count), col.count*4))
	}

	epNames := []struct {
		count float64
		name  string
		tier  Tier
	}{
		{25, "First Steps", TierBronze}, {42, "Answer Seeker", TierBronze},
		{69, "Nice", TierBronze}, {88, "Lucky Number", TierBronze},
		{99, "Almost 100", TierBronze}, {111, "Triple One", TierSilver},
		{123, "Easy as ABC", TierSilver}, {222, "Triple Two", TierSilver},
		{321, "Countdown", TierSilver}, {333, "Triple Three", TierGold},
		{420, "Blaze It", TierGold}, {444, "Quad Four", TierGold},
		{500, "Half Thousand", TierGold}, {555, "Five Five Five", TierPlatinum},
		{666, "Devils Number", TierPlatinum}, {777, "Lucky Sevens", TierPlatinum},
		{888, "Infinite Prosperity", TierPlatinum}, {999, "Almost 1K", TierDiamond},
		{1111, "All Ones", TierDiamond}, {1234, "Sequential", TierDiamond},
		{1337, "Elite Leet", TierDiamond}, {2222, "All Twos", TierDiamond},
	}
	for _, ep := range epNames {
		out = append(out, ach(
			fmt.Sprintf("ep_special_%d", int(ep.count)),
			ep.name,
			fmt.Sprintf("Watch exactly %d episodes", int(ep.count)),
			CategoryMilestones, ep.tier, "🎯",
			atLeast(ReqEpisodesWatched, ep.count), ep.count*0.5))
	}

	timeNames := []struct {
		hours float64
		name  string
		tier  Tier
	}{
		{4, "Movie Marathon", TierBronze}, {8, "Work Day", TierBronze},
		{16, "Half Day Binge", TierBronze}, {36, "Day and a Half", TierSilver},
		{50, "Two Days Strong", TierSilver}, {84, "Half Week", TierSilver},
		{120, "Five Days", TierGold}, {150, "Full Week Work", TierGold},
		{240, "Ten Days", TierGold}, {336, "Two Weeks", TierPlatinum},
		{504, "Three Weeks", TierPlatinum}, {600, "Twenty Five Days", TierPlatinum},
		{840, "Five Weeks", TierDiamond}, {1440, "Two Months", TierDiamond},
		{2160, "Three Months", TierDiamond}, {4320, "Half Year", TierDiamond},
	}
	for _, mark := range timeNames {
		out = append(out, ach(
			fmt.Sprintf("time_special_%dh", int(mark.hours)),
			mark.name,
			fmt.Sprintf("Watch %d hours of anime", int(mark.hours)),
			CategoryTime, mark.tier, "⌛",
			atLeast(ReqWatchTimeMinutes, mark.hours*60), mark.hours))
	}

	scoreTiers := []struct {
		score float64
		name  string
		desc  string
		tier  Tier
	}{
		{4.0, "Critical Eye", "Maintain 4.0 mean", TierBronze},
		{4.5, "Tough Critic", "Maintain 4.5 mean", TierBronze},
		{5.5, "Moderate Viewer", "Maintain 5.5 mean", TierSilver},
		{6.0, "Fair Rater", "Maintain 6.0 mean", TierSilver},
		{6.5, "Positive Viewer", "Maintain 6.5 mean", TierSilver},
		{7.5, "Generous Viewer", "Maintain 7.5 mean", TierGold},
		{8.5, "Loving Viewer", "Maintain 8.5 mean", TierGold},
		{9.5, "Perfect Taste", "Maintain 9.5 mean", TierPlatinum},
	}
	for _, st := range scoreTiers {
		out = append(out, ach(
			fmt.Sprintf("mean_score_%.1f", st.score),
			st.name, st.desc,
			CategoryScores, st.tier, "⭐",
			atLeast(ReqMeanScore, st.score), st.score*20))
	}

	numericMilestones := []float64{
		9, 14, 19, 23, 29, 34, 39, 43, 47, 49, 53, 57, 62, 67, 72, 78, 82, 87, 92, 97,
		102, 107, 113, 117, 127, 133, 137, 143, 147, 152, 157, 163, 167, 172, 177, 183,
		187, 192, 197, 203, 207, 213, 217, 223, 227, 233, 237, 243, 247, 253, 257, 263,
		267, 272, 277, 283, 287, 292, 297, 303, 307, 313, 317, 323, 327, 333, 337, 343,
		347, 353, 357, 363, 367, 372, 377, 383, 387, 392, 397, 403, 407, 413, 417, 423,
		427, 433, 437, 443, 447, 453, 457, 463, 467, 472, 477, 483, 487, 492, 497,
	}
	for _, num := range numericMilestones {
		out = append(out, ach(
			fmt.Sprintf("numeric_%d", int(num)),
			fmt.Sprintf("%d Milestone", int(num)),
			fmt.Sprintf("Reach %d anime watched", int(num)),
			CategoryWatching, ladder(num, 100, 250, 400, 475), "🔢",
			atLeast(ReqTotalAnimeCount, num), num*0.7))
	}

	episodeMilestones := []float64{
		33, 44, 55, 66, 77, 101, 133, 155, 188, 211, 233, 255, 277, 299, 311, 355,
		377, 399, 422, 455, 477, 511, 533, 566, 588, 611, 633, 666, 688, 711, 733,
		755, 777, 799, 822, 844, 866, 888, 911, 933, 955, 977, 1010, 1055, 1099,
		1122, 1155, 1188, 1211, 1244, 1277, 1333, 1366, 1399, 1422, 1455, 1488, 1511,
		1555, 1588, 1611, 1666, 1699, 1733, 1777, 1811, 1844, 1877, 1911, 1944, 1977,
	}
	for _, ep := range episodeMilestones {
		out = append(out, ach(
			fmt.Sprintf("ep_numeric_%d", int(ep)),
			fmt.Sprintf("%d Episodes Watched", int(ep)),
			fmt.Sprintf("Watch %d episodes total", int(ep)),
			CategoryWatching, ladder(ep, 500, 1000, 1500, 1800), "📹",
			atLeast(ReqEpisodesWatched, ep), ep*0.2))
	}

	completionSpecials := []struct {
		count float64
		name  string
	}{
		{2, "Double Trouble"}, {4, "Fantastic Four"}, {6, "Half Dozen"},
		{8, "Crazy Eight"}, {9, "Cloud Nine"}, {11, "Elevenses"},
		{13, "Lucky Thirteen"}, {16, "Sweet Sixteen"}, {17, "Dancing Queen"},
		{21, "Coming of Age"}, {24, "Full Day Hours"}, {31, "Month Complete"},
		{34, "Rule 34"}, {44, "Double Four"}, {49, "Seven Squared"},
		{52, "Weeks in Year"}, {64, "Power of Two"}, {69, "Nice Completion"},
		{77, "Lucky Double"}, {88, "Double Infinity"}, {99, "Ninety Nine"},
		{111, "One Hundred Eleven"}, {123, "One Two Three"}, {128, "Byte Complete"},
		{144, "Gross Amount"}, {155, "Speed Limit"}, {169, "Thirteen Squared"},
		{188, "Double Lucky"}, {199, "Almost 200"}, {222, "Triple Deuces"},
		{256, "Two Fifty Six"}, {269, "Prime Time"}, {299, "Almost 300"},
		{333, "Triple Threes"}, {365, "Days in Year"}, {399, "Almost 400"},
		{420, "Four Twenty"}, {444, "Quad Fours"}, {499, "Almost 500"},
		{512, "Nine Bit"}, {555, "Five Five Five"}, {599, "Almost 600"},
		{666, "Number of the Beast"}, {699, "Almost 700"}, {777, "Triple Lucky"},
		{799, "Almost 800"}, {888, "Triple Eights"}, {899, "Almost 900"},
		{999, "Triple Nines"},
	}
	for _, special := range completionSpecials {
		out = append(out, ach(
			fmt.Sprintf("completion_special_%d", int(special.count)),
			special.name,
			fmt.Sprintf("Complete %d anime", int(special.count)),
			CategoryCompletion, ladder(special.count, 50, 150, 350, 600), "🎊",
			atLeast(ReqCompletedCount, special.count), special.count*1.5))
	}

	extraCompletions := []float64{
		14, 19, 26, 29, 32, 38, 43, 46, 51, 54, 57, 59, 62, 68, 71, 73, 76, 78,
		81, 83, 86, 89, 91, 93, 96, 98, 101, 103, 106, 108, 112, 114, 116, 118,
		121, 124, 126, 129, 131, 134, 136, 138, 141, 143, 146, 148, 151, 153,
	}
	for _, num := range extraCompletions {
		out = append(out, ach(
			fmt.Sprintf("extra_complete_%d", int(num)),
			fmt.Sprintf("%d Completions", int(num)),
			fmt.Sprintf("Complete %d anime shows", int(num)),
			CategoryCompletion, ladder(num, 50, 100, 125, 145), "🎉",
			atLeast(ReqCompletedCount, num), num*1.2))
	}

	return out
}
