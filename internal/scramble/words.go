package scramble

// defaultWords holds the built-in word lists keyed by word length.
// Lists can be replaced wholesale through Config.Words.
var defaultWords = map[int][]string{
	3: {
		"act", "add", "air", "and", "ant", "arm", "art", "ask", "bad", "bag",
		"bat", "bed", "bee", "big", "box", "boy", "bug", "bus", "but", "buy",
		"can", "cap", "car", "cat", "cow", "cry", "cup", "cut", "dad", "day",
		"dog", "dry", "ear", "eat", "egg", "end", "eye", "fan", "far", "fat",
		"fit", "fix", "fly", "for", "fun", "gas", "get", "god", "hat", "hit",
		"hot",
	},
	4: {
		"able", "acid", "aged", "also", "area", "army", "away", "baby", "back",
		"ball", "band", "bank", "base", "bath", "bear", "beat", "been", "beer",
		"bell", "belt", "best", "bird", "blow", "blue", "boat", "body", "bomb",
		"bond", "bone", "book", "boom", "born", "boss", "both", "bowl", "bulk",
		"burn", "bush", "busy", "call", "calm", "came", "camp", "card", "care",
		"case", "cash", "cast", "cell", "chat",
	},
	5: {
		"about", "above", "abuse", "actor", "adapt", "after", "again", "agree",
		"ahead", "alarm", "album", "alert", "alike", "alive", "allow", "alone",
		"along", "alter", "among", "anger", "angle", "angry", "ankle", "apart",
		"apple", "apply", "arena", "argue", "arise", "armor", "array", "arrow",
		"asset", "avoid", "award", "aware", "awful", "bacon", "badge", "badly",
		"basic", "basis", "beach", "beard", "beast", "begin", "being", "below",
		"bench", "berry",
	},
}
