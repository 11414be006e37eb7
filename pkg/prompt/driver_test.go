package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-mailgen/pkg/prompt"
)

func TestDriverHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := prompt.NewDriver()

	if _, err := driver.Input(ctx, prompt.InputConfig{Message: "never shown"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Input, got %v", err)
	}
	if _, err := driver.Confirm(ctx, prompt.ConfirmConfig{Message: "never shown"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Confirm, got %v", err)
	}
	if err := driver.Info(ctx, "never shown"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Info, got %v", err)
	}
}
