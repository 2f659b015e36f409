package crash

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/letter-isles/internal/core"
	"github.com/vovakirdan/letter-isles/internal/events"
	"github.com/vovakirdan/letter-isles/internal/islands"
	"github.com/vovakirdan/letter-isles/internal/minigame"
)

func newTestStore() *Store {
	return NewStore(rand.New(rand.NewSource(1)), nil)
}

func TestSubmitWordSpawnsBlocks(t *testing.T) {
	s := newTestStore()
	s.SubmitWord("cat")

	if s.Word != "CAT" {
		t.Errorf("Word = %q, want CAT", s.Word)
	}
	if s.Phase != PhasePlaying {
		t.Errorf("Phase = %q, want playing", s.Phase)
	}
	if len(s.LetterBlocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(s.LetterBlocks))
	}

	seen := map[string]bool{}
	home, _ := islands.ByID("home")
	for i, b := range s.LetterBlocks {
		if seen[b.ID] {
			t.Errorf("duplicate block id %q", b.ID)
		}
		seen[b.ID] = true
		if b.SpawnIndex != i {
			t.Errorf("block %d SpawnIndex = %d", i, b.SpawnIndex)
		}
		if d := b.Position.PlaneDist(home.Position); d > 30 {
			t.Errorf("block %d scattered %f from island center, want <= 30", i, d)
		}
		if b.Position.Y < 0.75 || b.Position.Y > 1.25 {
			t.Errorf("block %d height = %f", i, b.Position.Y)
		}
	}
	if got := s.LetterBlocks[0].Letter + s.LetterBlocks[1].Letter + s.LetterBlocks[2].Letter; got != "CAT" {
		t.Errorf("letters spell %q", got)
	}
}

func TestSubmitEmptyWordIgnored(t *testing.T) {
	s := newTestStore()
	s.SubmitWord("")
	if s.Phase != PhaseIdle || len(s.LetterBlocks) != 0 {
		t.Error("empty word should not start a round")
	}
}

func TestPortalHitAwardsGems(t *testing.T) {
	s := newTestStore()
	now := time.Now()

	s.MarkLetterHit("b1", "A", events.Portal, now)
	if s.Gems != 3 {
		t.Errorf("Gems = %d, want 3", s.Gems)
	}
	s.MarkLetterHit("b2", "B", events.Explosion, now)
	if s.Gems != 3 {
		t.Errorf("Gems = %d after non-portal hit, want 3", s.Gems)
	}
	if len(s.HitLetters) != 2 {
		t.Errorf("HitLetters = %d, want 2", len(s.HitLetters))
	}
}

func TestIncrementScoreBumpsStars(t *testing.T) {
	s := newTestStore()
	s.IncrementScore()
	s.IncrementScore()
	if s.Score != 2 || s.Stars != 2 {
		t.Errorf("score %d stars %d, want 2/2", s.Score, s.Stars)
	}
}

func TestAllClearBonusAwardedOnce(t *testing.T) {
	s := newTestStore()
	s.SubmitWord("CAT")

	s.SetGamePhase(PhaseAllClear)
	if s.Gems != 5 {
		t.Fatalf("Gems = %d, want 5", s.Gems)
	}
	s.SetGamePhase(PhaseAllClear)
	if s.Gems != 5 {
		t.Errorf("Gems = %d after repeat, want 5", s.Gems)
	}

	// The next word arms the bonus again.
	s.SubmitWord("DOG")
	s.SetGamePhase(PhaseAllClear)
	if s.Gems != 10 {
		t.Errorf("Gems = %d after second round, want 10", s.Gems)
	}
}

func TestChangeDimensionNeverStays(t *testing.T) {
	s := newTestStore()
	hit := map[islands.Dimension]bool{}
	for i := 0; i < 200; i++ {
		before := s.Dimension
		after := s.ChangeDimension()
		if after == before {
			t.Fatal("warp returned the current dimension")
		}
		hit[after] = true
	}
	if len(hit) != len(islands.Dimensions) {
		t.Errorf("200 warps reached %d dimensions, want %d", len(hit), len(islands.Dimensions))
	}
}

func TestSetCurrentIsland(t *testing.T) {
	s := newTestStore()
	s.SetCurrentIsland("volcano")
	if s.CurrentIslandID != "volcano" || s.Dimension != islands.Volcano {
		t.Errorf("got %s/%s", s.CurrentIslandID, s.Dimension)
	}

	s.SetCurrentIsland("atlantis")
	if s.CurrentIslandID != "volcano" {
		t.Error("unknown island should be a no-op")
	}
}

func TestBridgeUnlockSymmetry(t *testing.T) {
	s := newTestStore()
	s.UnlockBridge("home", "candy")
	if !s.IsBridgeUnlocked("home", "candy") || !s.IsBridgeUnlocked("candy", "home") {
		t.Error("bridge should open in both directions")
	}
	if s.IsBridgeUnlocked("home", "ocean") {
		t.Error("unrelated bridge opened")
	}
}

func TestCheckWordUnlock(t *testing.T) {
	s := newTestStore()

	s.CheckWordUnlock("banana")
	if len(s.UnlockedBridges) != 0 {
		t.Fatal("non-keyword unlocked a bridge")
	}

	s.CheckWordUnlock("cake")
	if !s.IsBridgeUnlocked("home", "candy") {
		t.Error("CAKE should open home->candy")
	}

	s.CheckWordUnlock("SPACE")
	if !s.IsBridgeUnlocked("volcano", "space") {
		t.Error("SPACE should open volcano->space")
	}
}

func TestSubmitWordTriggersUnlock(t *testing.T) {
	s := newTestStore()
	s.SubmitWord("fire")
	if !s.IsBridgeUnlocked("home", "volcano") {
		t.Error("typing FIRE should open the volcano bridge")
	}
}

func TestPurchaseItem(t *testing.T) {
	s := newTestStore()
	s.Stars = 10

	if s.PurchaseItem("build-castle") {
		t.Error("purchase should fail on insufficient stars")
	}
	if s.Stars != 10 || len(s.OwnedItems) != 0 {
		t.Error("failed purchase mutated the store")
	}

	if !s.PurchaseItem("tree-oak") {
		t.Fatal("purchase should succeed")
	}
	if s.Stars != 5 {
		t.Errorf("Stars = %d, want 5", s.Stars)
	}
	if len(s.OwnedItems) != 1 || s.OwnedItems[0] != "tree-oak" {
		t.Errorf("OwnedItems = %v", s.OwnedItems)
	}

	if s.PurchaseItem("flying-carpet-9000") {
		t.Error("unknown item purchased")
	}
}

func TestDecorationLifecycle(t *testing.T) {
	s := newTestStore()
	s.PlaceDecoration(PlacedDecoration{InstanceID: "p1", ItemID: "tree-oak"})
	s.PlaceDecoration(PlacedDecoration{InstanceID: "p2", ItemID: "flower-rose"})

	s.MoveDecoration("p1", core.Vec3{X: 4, Z: -2}, 1.5)
	if s.PlacedDecorations[0].Position.X != 4 || s.PlacedDecorations[0].RotationY != 1.5 {
		t.Error("move did not apply")
	}

	s.RemoveDecoration("p1")
	if len(s.PlacedDecorations) != 1 || s.PlacedDecorations[0].InstanceID != "p2" {
		t.Errorf("decorations = %v", s.PlacedDecorations)
	}
}

func TestMiniGameSession(t *testing.T) {
	s := newTestStore()
	now := time.Now()

	s.StartMiniGame(minigame.ColorMatch, core.Vec3{}, now)
	if s.ActiveMiniGame == nil || len(s.MiniGameTargets) != 4 {
		t.Fatalf("session missing or wrong target count %d", len(s.MiniGameTargets))
	}

	// Starting again replaces the session outright.
	s.StartMiniGame(minigame.TargetPractice, core.Vec3{}, now)
	if s.ActiveMiniGame.Type != minigame.TargetPractice || len(s.MiniGameTargets) != 5 {
		t.Error("restart did not replace the session")
	}

	id := s.MiniGameTargets[0].ID
	s.CollectMiniGameTarget(id)
	s.CollectMiniGameTarget(id)
	if s.ActiveMiniGame.Score != 1 {
		t.Errorf("Score = %d, want 1 after double-collect", s.ActiveMiniGame.Score)
	}

	s.EndMiniGame(true)
	if s.ActiveMiniGame != nil || s.MiniGameTargets != nil {
		t.Error("end should clear the session")
	}
	cfg := minigame.Configs[minigame.TargetPractice]
	if s.Stars != cfg.RewardStars || s.Gems != cfg.RewardGems {
		t.Errorf("reward %d/%d, want %d/%d", s.Stars, s.Gems, cfg.RewardStars, cfg.RewardGems)
	}

	// Second end is a no-op.
	s.EndMiniGame(true)
	if s.Stars != cfg.RewardStars {
		t.Error("double end paid twice")
	}
}

func TestEndMiniGameAbandonedNoReward(t *testing.T) {
	s := newTestStore()
	s.StartMiniGame(minigame.SpeedRings, core.Vec3{}, time.Now())
	s.EndMiniGame(false)
	if s.Stars != 0 || s.Gems != 0 {
		t.Error("abandoned session paid a reward")
	}
	if s.ActiveMiniGame != nil {
		t.Error("session not cleared")
	}
}

func TestLetterLearning(t *testing.T) {
	s := newTestStore()
	s.RecordAnimalHit("a")
	s.RecordAnimalHit("A")
	if s.IsLetterLearned("A") {
		t.Error("learned after 2 hits, threshold is 3")
	}
	s.RecordAnimalHit("A")
	if !s.IsLetterLearned("a") {
		t.Error("not learned after 3 hits")
	}
}

func TestAccessibilityPatch(t *testing.T) {
	s := newTestStore()
	mode := "deuteranopia"
	s.SetAccessibility(AccessibilityPatch{ColorBlindMode: &mode})

	if s.Accessibility.ColorBlindMode != "deuteranopia" {
		t.Errorf("ColorBlindMode = %q", s.Accessibility.ColorBlindMode)
	}
	if s.Accessibility.TextScale != 1 {
		t.Error("untouched field changed")
	}
}

func TestParentSettingsPatch(t *testing.T) {
	s := newTestStore()
	pin := "4242"
	learning := true
	s.SetParentSettings(ParentPatch{PIN: &pin, LearningMode: &learning})

	if s.ParentSettings.PIN != "4242" || !s.ParentSettings.LearningMode {
		t.Errorf("patch not applied: %+v", s.ParentSettings)
	}
	if s.ParentSettings.Difficulty != "normal" || len(s.ParentSettings.EnabledDimensions) != 6 {
		t.Error("untouched fields changed")
	}
}

func TestResetGameVersusResetWord(t *testing.T) {
	s := newTestStore()
	s.SubmitWord("CAT")
	s.IncrementScore()

	s.ResetWord()
	if s.Score != 1 {
		t.Error("ResetWord cleared the score")
	}
	if s.Word != "" || s.Phase != PhaseIdle || len(s.LetterBlocks) != 0 {
		t.Error("ResetWord left session state")
	}

	s.SubmitWord("DOG")
	s.ResetGame()
	if s.Score != 0 || s.Word != "" || len(s.HitLetters) != 0 {
		t.Error("ResetGame left session state")
	}
	if s.Stars != 1 {
		t.Error("ResetGame should not touch currency")
	}
}

func TestSaverFiresOnPersistedMutations(t *testing.T) {
	var last PersistedState
	calls := 0
	s := NewStore(rand.New(rand.NewSource(1)), func(p PersistedState) {
		last = p
		calls++
	})

	s.AddStars(7)
	s.UnlockBridge("home", "ocean")
	if calls != 2 {
		t.Fatalf("saver fired %d times, want 2", calls)
	}
	if last.Stars != 7 {
		t.Errorf("snapshot Stars = %d", last.Stars)
	}
	if len(last.UnlockedBridges) != 2 {
		t.Errorf("snapshot bridges = %v", last.UnlockedBridges)
	}

	// Session-only mutations do not persist.
	s.SetBuildMode(true)
	s.SubmitWord("ZZZ")
	if calls != 2 {
		t.Errorf("session mutation flushed a save, calls = %d", calls)
	}
}

func TestBuildAndPhotoModesAreExclusive(t *testing.T) {
	s := newTestStore()

	s.SetBuildMode(true)
	s.SetPhotoMode(true)
	if s.BuildMode {
		t.Error("photo mode should leave build mode")
	}

	s.SetBuildMode(true)
	if s.PhotoMode {
		t.Error("build mode should leave photo mode")
	}
}

type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) SaveBlob(key string, data []byte) error {
	m.blobs[key] = data
	return nil
}

func (m *memStore) LoadBlob(key string) ([]byte, error) {
	return m.blobs[key], nil
}

func TestPersistenceRoundTrip(t *testing.T) {
	mem := newMemStore()
	s := NewStore(rand.New(rand.NewSource(1)), StoreSaver(mem))
	s.AddStars(12)
	s.AddGems(4)
	s.UnlockBridge("home", "candy")
	s.RecordAnimalHit("Q")
	s.SetLearningMode(true)

	restored := NewStore(rand.New(rand.NewSource(2)), nil)
	if err := restored.Load(mem); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if restored.Stars != 12 || restored.Gems != 4 {
		t.Errorf("currency %d/%d, want 12/4", restored.Stars, restored.Gems)
	}
	if !restored.IsBridgeUnlocked("candy", "home") {
		t.Error("bridge lost in round trip")
	}
	if restored.LetterProgress["Q"].AnimalHitCount != 1 {
		t.Error("letter progress lost")
	}
	if !restored.LearningMode {
		t.Error("learning mode lost")
	}
}

func TestRestoreMissingFieldsKeepDefaults(t *testing.T) {
	// A save from an older build that predates accessibility settings.
	raw, _ := json.Marshal(map[string]any{
		"stars":           30,
		"unlockedBridges": []string{"home->candy", "candy->home"},
	})

	mem := newMemStore()
	mem.blobs[SaveKey] = raw

	s := newTestStore()
	if err := s.Load(mem); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Stars != 30 {
		t.Errorf("Stars = %d, want 30", s.Stars)
	}
	if !s.IsBridgeUnlocked("home", "candy") {
		t.Error("bridges not restored")
	}
	if s.Accessibility != DefaultAccessibility() {
		t.Errorf("accessibility = %+v, want defaults", s.Accessibility)
	}
	if s.ParentSettings.PIN != "0000" {
		t.Error("parent settings should default")
	}
}

func TestLoadCorruptSaveFallsBackToDefaults(t *testing.T) {
	mem := newMemStore()
	mem.blobs[SaveKey] = []byte("{not json")

	s := newTestStore()
	if err := s.Load(mem); err != nil {
		t.Fatalf("corrupt save should not error: %v", err)
	}
	if s.Stars != 0 || s.Gems != 0 {
		t.Error("corrupt save mutated the store")
	}
}
