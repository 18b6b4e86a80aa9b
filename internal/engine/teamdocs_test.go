package engine

import (
	"strings"
	"testing"
)

func TestBuildTeamDocuments(t *testing.T) {
	batting := []StatLine{
		{"Player ID": "p1", "team": "NYY", "AB": 600},
		{"Player ID": "p2", "team": "BOS", "AB": 550},
		{"Player ID": "p3", "team": TotalTeam, "AB": 500},
	}
	teams := []TeamInfo{
		{ID: "NYY", League: "AL", Division: "East"},
		{ID: "BOS", League: "AL", Division: "East"},
	}
	docs := BuildTeamDocuments(batting, nil, nil, teams)
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}

	nyy := docs[0]
	if nyy.TeamID != "NYY" {
		t.Fatalf("first doc = %s, want NYY", nyy.TeamID)
	}
	lines, ok := nyy.Batting.([]StatLine)
	if !ok {
		t.Fatalf("batting category = %T, want []StatLine", nyy.Batting)
	}
	if len(lines) != 1 || lines[0].PlayerID() != "p1" {
		t.Errorf("NYY batting = %v, want only p1 (TOT and other teams excluded)", lines)
	}
	if pitching, ok := nyy.Pitching.([]StatLine); !ok || len(pitching) != 0 {
		t.Errorf("empty category = %v, want an empty slice, not nil or an error", nyy.Pitching)
	}
}

func TestCategoryErrorIsIsolated(t *testing.T) {
	// A line with a non-string team value makes Team() panic for this
	// category; the document must carry a marker instead of propagating it.
	poisoned := []StatLine{{"Player ID": "p1", "team": 42}}
	healthy := []StatLine{{"Player ID": "p2", "team": "NYY", "W": 20}}

	docs := BuildTeamDocuments(poisoned, healthy, nil, []TeamInfo{{ID: "NYY"}})
	doc := docs[0]

	marker, ok := doc.Batting.(string)
	if !ok || !strings.HasPrefix(marker, "Error: ") {
		t.Fatalf("batting = %v, want an \"Error: …\" marker", doc.Batting)
	}
	if lines, ok := doc.Pitching.([]StatLine); !ok || len(lines) != 1 {
		t.Errorf("pitching = %v, want the healthy category untouched", doc.Pitching)
	}
}
