package logger

import "testing"

func TestNewAcceptsKnownModes(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"", "dev", "development", "Production", "prod"} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("mode %q: expected logger, got error: %v", mode, err)
		}
		if log == nil {
			t.Fatalf("mode %q: expected non-nil logger", mode)
		}
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	if _, err := New("verbose"); err == nil {
		t.Fatal("expected unknown mode to fail")
	}
}

func TestSyncToleratesNil(t *testing.T) {
	t.Parallel()

	Sync(nil)
}
