package logging

import (
	"context"
	"testing"
)

func TestWithInput(t *testing.T) {
	ctx := WithInput(context.Background(), "/tmp/rtm.json")

	if got := GetInput(ctx); got != "/tmp/rtm.json" {
		t.Errorf("GetInput() = %q, want %q", got, "/tmp/rtm.json")
	}
}

func TestWithList(t *testing.T) {
	ctx := WithList(context.Background(), "Work")

	if got := GetList(ctx); got != "Work" {
		t.Errorf("GetList() = %q, want %q", got, "Work")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetInput(ctx); got != "" {
		t.Errorf("GetInput() = %q, want empty string", got)
	}

	if got := GetList(ctx); got != "" {
		t.Errorf("GetList() = %q, want empty string", got)
	}
}
