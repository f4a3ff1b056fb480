package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	redisclient "github.com/KirkDiggler/dungeon-gains/internal/redis"
)

// Snapshots are hashes: the JSON state plus its save time
const stateField = "state"

type repair struct {
	key  string
	data []byte
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewClient(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning game state snapshots...")

	iter := client.Scan(ctx, 0, "gamestate:*", 0).Iterator()

	var corruptedKeys []string
	var repairs []repair
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.HGet(ctx, key, stateField).Bytes()
		if err == redisclient.Nil {
			fmt.Printf("✗ Missing state field in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			fmt.Printf("✗ Empty snapshot in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		var state entities.GameState
		if err := json.Unmarshal(data, &state); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// Snapshots from older clients lack fields that Normalize fills in
		before, _ := json.Marshal(&state)
		state.Normalize()
		after, err := json.Marshal(&state)
		if err != nil {
			fmt.Printf("Error encoding %s: %v\n", key, err)
			continue
		}
		if !bytes.Equal(before, after) {
			fmt.Printf("~ Outdated snapshot in %s\n", key)
			repairs = append(repairs, repair{key: key, data: after})
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted and %d outdated snapshots\n",
		checkedCount, len(corruptedKeys), len(repairs))

	if len(corruptedKeys) == 0 && len(repairs) == 0 {
		fmt.Println("All snapshots are healthy!")
		return
	}

	// Ask for confirmation before changing anything
	fmt.Print("\nDelete corrupted and rewrite outdated snapshots? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for _, r := range repairs {
		// writing a field keeps the key's TTL
		if err := client.HSet(ctx, r.key, stateField, r.data).Err(); err != nil {
			fmt.Printf("Failed to rewrite %s: %v\n", r.key, err)
		} else {
			fmt.Printf("Rewrote %s\n", r.key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
