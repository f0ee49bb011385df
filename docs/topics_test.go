package docs

import (
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) error = %v", err)
	}
	if !strings.Contains(content, "stock tracker") {
		t.Errorf("readme topic does not look like the readme:\n%s", content)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic): want error, got nil")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if len(topics) < 2 {
		t.Fatalf("GetAllTopics() = %v, want at least readme and ledger-format", topics)
	}
	if topics[0] != "readme" {
		t.Errorf("GetAllTopics()[0] = %q, want readme first", topics[0])
	}
}

func TestTitle(t *testing.T) {
	if got, want := Title("ledger-format"), "Ledger file format"; got != want {
		t.Errorf("Title(ledger-format) = %q, want %q", got, want)
	}
	// Unknown topics fall back to the topic name.
	if got := Title("nope"); got != "nope" {
		t.Errorf("Title(nope) = %q, want %q", got, "nope")
	}
}

func TestIndex(t *testing.T) {
	index, err := Index()
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	for _, want := range []string{"`readme`", "`ledger-format`", "Ledger file format"} {
		if !strings.Contains(index, want) {
			t.Errorf("Index() missing %q in:\n%s", want, index)
		}
	}
}
