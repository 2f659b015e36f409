package islands

// Animals maps every uppercase letter to the animal that spawns when the
// car crashes into it. A letter counts as learned after enough hits.
var Animals = map[string]string{
	"A": "Alligator",
	"B": "Bear",
	"C": "Cat",
	"D": "Dog",
	"E": "Elephant",
	"F": "Frog",
	"G": "Giraffe",
	"H": "Horse",
	"I": "Iguana",
	"J": "Jellyfish",
	"K": "Koala",
	"L": "Lion",
	"M": "Monkey",
	"N": "Narwhal",
	"O": "Owl",
	"P": "Penguin",
	"Q": "Quail",
	"R": "Rabbit",
	"S": "Snake",
	"T": "Turtle",
	"U": "Unicorn",
	"V": "Vulture",
	"W": "Whale",
	"X": "X-ray Fish",
	"Y": "Yak",
	"Z": "Zebra",
}

// WordSuggestions groups starter words shown in the word-entry help.
var WordSuggestions = map[string][]string{
	"Animals": {"CAT", "DOG", "FISH", "BEAR"},
	"Colors":  {"RED", "BLUE", "GREEN"},
	"Family":  {"MOM", "DAD", "BABY"},
	"Food":    {"APPLE", "CAKE", "MILK"},
	"Fun":     {"PLAY", "JUMP", "STAR"},
}

// suggestionOrder keeps the hint line stable across map iterations.
var suggestionOrder = []string{"Animals", "Colors", "Family", "Food", "Fun"}

// SuggestWords returns one starter word per category, rotated by n so the
// hint changes between prompts.
func SuggestWords(n int) []string {
	words := make([]string, 0, len(suggestionOrder))
	for _, cat := range suggestionOrder {
		list := WordSuggestions[cat]
		words = append(words, list[n%len(list)])
	}
	return words
}
