package application

import (
	"testing"
	"time"
)

func TestPingInteractor_Execute(t *testing.T) {
	interactor := NewPingInteractor()

	result := interactor.Execute(10 * time.Millisecond)

	if result == nil {
		t.Fatal("expected result, got nil")
	}

	if result.Message != "Pong! (10ms)" {
		t.Errorf("expected message %q, got %q", "Pong! (10ms)", result.Message)
	}
}

func TestPingInteractor_Execute_ReturnsNewResultEachTime(t *testing.T) {
	interactor := NewPingInteractor()

	result1 := interactor.Execute(0)
	result2 := interactor.Execute(0)

	if result1 == result2 {
		t.Error("expected different result instances")
	}
}
