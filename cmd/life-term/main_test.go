package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"torus-life/internal/sims/life"

	"github.com/rs/zerolog"
)

func TestRunDrawsEachGenerationUpToLimit(t *testing.T) {
	u, err := life.NewWithConfig(life.Config{Width: 5, Height: 5})
	if err != nil {
		t.Fatal(err)
	}
	// Vertical blinker in the middle column.
	u.Set(1, 2, life.Alive)
	u.Set(2, 2, life.Alive)
	u.Set(3, 2, life.Alive)

	var out bytes.Buffer
	opts := runOptions{tps: 1000, steps: 2}
	if err := run(context.Background(), u, opts, &out, zerolog.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if u.Generation() != 2 {
		t.Fatalf("Generation = %d, want 2", u.Generation())
	}

	text := out.String()
	for _, header := range []string{"generation 0 ", "generation 1 ", "generation 2 "} {
		if !strings.Contains(text, header) {
			t.Fatalf("missing %q in output:\n%s", header, text)
		}
	}
	if strings.Contains(text, clearScreen) {
		t.Fatal("clear sequence written with clear disabled")
	}
	if !strings.Contains(text, "◻◻◻◻◻\n◻◼◼◼◻\n◻◻◻◻◻\n") {
		t.Fatalf("horizontal blinker phase missing:\n%s", text)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	u := life.Default()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- run(ctx, u, runOptions{tps: 1, clear: true}, &out, zerolog.Nop()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
	if u.Generation() != 1 {
		t.Fatalf("Generation = %d, want 1 after a single tick", u.Generation())
	}
	if !strings.HasPrefix(out.String(), clearScreen) {
		t.Fatal("expected frame to start with the clear sequence")
	}
}

func TestRunHonorsCancelledContextWhenBehind(t *testing.T) {
	u := life.Default()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, u, runOptions{tps: 1_000_000_000}, io.Discard, zerolog.Nop()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run kept stepping after cancellation, generation %d", u.Generation())
	}
	if u.Generation() != 0 {
		t.Fatalf("Generation = %d, want 0 with a context cancelled up front", u.Generation())
	}
}
