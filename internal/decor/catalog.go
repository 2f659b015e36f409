// Package decor is the purchasable decoration catalog for build mode.
package decor

// Currency is what an item costs.
type Currency string

const (
	Stars Currency = "stars"
	Gems  Currency = "gems"
)

// Item is one catalog entry. MeshType and Color drive rendering only.
type Item struct {
	ID       string
	Name     string
	Category string
	Cost     int
	Currency Currency
	MeshType string
	Color    string
	Scale    float64
}

// Catalog lists every purchasable decoration.
var Catalog = []Item{
	{ID: "tree-oak", Name: "Oak Tree", Category: "Trees", Cost: 5, Currency: Stars, MeshType: "tree-round", Color: "#4CAF50", Scale: 1},
	{ID: "tree-palm", Name: "Palm Tree", Category: "Trees", Cost: 8, Currency: Stars, MeshType: "tree-palm", Color: "#66BB6A", Scale: 1},
	{ID: "tree-cherry", Name: "Cherry Blossom", Category: "Trees", Cost: 12, Currency: Stars, MeshType: "tree-round", Color: "#F48FB1", Scale: 1},
	{ID: "tree-cactus", Name: "Cactus", Category: "Trees", Cost: 6, Currency: Stars, MeshType: "tree-cactus", Color: "#81C784", Scale: 0.8},
	{ID: "tree-pine", Name: "Pine Tree", Category: "Trees", Cost: 10, Currency: Stars, MeshType: "tree-cone", Color: "#2E7D32", Scale: 1.2},

	{ID: "flower-daisy", Name: "Daisy", Category: "Flowers", Cost: 3, Currency: Stars, MeshType: "flower", Color: "#FFFFFF", Scale: 0.6},
	{ID: "flower-sunflower", Name: "Sunflower", Category: "Flowers", Cost: 5, Currency: Stars, MeshType: "flower", Color: "#FFD93D", Scale: 0.8},
	{ID: "flower-rose", Name: "Rose", Category: "Flowers", Cost: 6, Currency: Stars, MeshType: "flower", Color: "#FF6B6B", Scale: 0.6},
	{ID: "flower-tulip", Name: "Tulip", Category: "Flowers", Cost: 4, Currency: Stars, MeshType: "flower", Color: "#E040FB", Scale: 0.6},

	{ID: "build-treehouse", Name: "Treehouse", Category: "Buildings", Cost: 30, Currency: Stars, MeshType: "building-house", Color: "#8D6E63", Scale: 1.2},
	{ID: "build-windmill", Name: "Windmill", Category: "Buildings", Cost: 25, Currency: Stars, MeshType: "building-tower", Color: "#ECEFF1", Scale: 1.5},
	{ID: "build-lighthouse", Name: "Lighthouse", Category: "Buildings", Cost: 35, Currency: Stars, MeshType: "building-tower", Color: "#FF6B6B", Scale: 1.8},
	{ID: "build-castle", Name: "Castle", Category: "Buildings", Cost: 50, Currency: Stars, MeshType: "building-castle", Color: "#B39DDB", Scale: 2},

	{ID: "pet-cat", Name: "Cat", Category: "Animals", Cost: 15, Currency: Stars, MeshType: "pet-round", Color: "#FF8A65", Scale: 0.5},
	{ID: "pet-dog", Name: "Dog", Category: "Animals", Cost: 15, Currency: Stars, MeshType: "pet-round", Color: "#A1887F", Scale: 0.6},
	{ID: "pet-bunny", Name: "Bunny", Category: "Animals", Cost: 20, Currency: Stars, MeshType: "pet-round", Color: "#F8BBD0", Scale: 0.5},
	{ID: "pet-duck", Name: "Duckling", Category: "Animals", Cost: 18, Currency: Stars, MeshType: "pet-round", Color: "#FFF176", Scale: 0.4},

	{ID: "fun-trampoline", Name: "Trampoline", Category: "Fun", Cost: 10, Currency: Stars, MeshType: "fun-disc", Color: "#42A5F5", Scale: 1},
	{ID: "fun-slide", Name: "Slide", Category: "Fun", Cost: 15, Currency: Stars, MeshType: "fun-ramp", Color: "#FF7043", Scale: 1.2},
	{ID: "fun-swing", Name: "Swing", Category: "Fun", Cost: 12, Currency: Stars, MeshType: "fun-arch", Color: "#FFD93D", Scale: 1},
	{ID: "fun-fountain", Name: "Fountain", Category: "Fun", Cost: 20, Currency: Stars, MeshType: "fun-fountain", Color: "#4DD0E1", Scale: 1},

	{ID: "vehicle-boat", Name: "Boat", Category: "Vehicles", Cost: 25, Currency: Gems, MeshType: "vehicle-boat", Color: "#4FC3F7", Scale: 1},
	{ID: "vehicle-heli", Name: "Helicopter", Category: "Vehicles", Cost: 35, Currency: Gems, MeshType: "vehicle-heli", Color: "#EF5350", Scale: 1},
	{ID: "vehicle-train", Name: "Train", Category: "Vehicles", Cost: 40, Currency: Gems, MeshType: "vehicle-train", Color: "#66BB6A", Scale: 1.2},

	{ID: "magic-rainbow", Name: "Rainbow", Category: "Magic", Cost: 15, Currency: Gems, MeshType: "magic-arch", Color: "#FF6B6B", Scale: 2},
	{ID: "magic-star", Name: "Shooting Star", Category: "Magic", Cost: 20, Currency: Gems, MeshType: "magic-star", Color: "#FFD93D", Scale: 1},
	{ID: "magic-lights", Name: "Fairy Lights", Category: "Magic", Cost: 18, Currency: Gems, MeshType: "magic-sparkle", Color: "#CE93D8", Scale: 1.5},
}

var byID = func() map[string]Item {
	m := make(map[string]Item, len(Catalog))
	for _, it := range Catalog {
		m[it.ID] = it
	}
	return m
}()

// ByID looks up a catalog item.
func ByID(id string) (Item, bool) {
	it, ok := byID[id]
	return it, ok
}

// ByCategory returns the items of one category in catalog order.
func ByCategory(category string) []Item {
	var out []Item
	for _, it := range Catalog {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range Catalog {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
