package redis

import (
	"math/rand"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"dino-game-service/internal/app"
	"dino-game-service/internal/engine"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute)

	quiz := engine.NewSessionWithRand(sampleCatalog(), engine.SessionConfig{
		Profile: engine.TimedProfile(15),
	}, rand.New(rand.NewSource(1)))
	store.Put(app.NewQuizGameSession("s-1", quiz))

	if !mr.Exists("game:session:s-1") {
		t.Fatalf("expected redis liveness key to be set")
	}
	if _, ok := store.Get("s-1"); !ok {
		t.Fatalf("expected local session present")
	}

	store.Delete("s-1")
	if mr.Exists("game:session:s-1") {
		t.Fatalf("expected redis key to be removed")
	}
	if _, ok := store.Get("s-1"); ok {
		t.Fatalf("expected local session removed")
	}
}
