package market

import "testing"

func TestDerivePriority(t *testing.T) {
	tests := []struct {
		impact Impact
		want   Priority
	}{
		{ImpactHigh, PriorityUrgent},
		{ImpactMedium, PriorityMedium},
		{ImpactLow, PriorityLow},
	}

	for _, tt := range tests {
		if got := DerivePriority(tt.impact); got != tt.want {
			t.Errorf("DerivePriority(%s) = %s, want %s", tt.impact, got, tt.want)
		}
	}
}

func TestCriteria_ToggleSentiment(t *testing.T) {
	base := Criteria{Sentiments: []Sentiment{SentimentPositive}}

	added := base.ToggleSentiment(SentimentNegative)
	if !added.HasSentiment(SentimentPositive) || !added.HasSentiment(SentimentNegative) {
		t.Errorf("Expected both sentiments selected, got %v", added.Sentiments)
	}
	if len(base.Sentiments) != 1 {
		t.Errorf("Toggle must not modify the original criteria, got %v", base.Sentiments)
	}

	removed := added.ToggleSentiment(SentimentPositive)
	if removed.HasSentiment(SentimentPositive) || len(removed.Sentiments) != 1 {
		t.Errorf("Expected positive removed, got %v", removed.Sentiments)
	}
	if !added.HasSentiment(SentimentPositive) {
		t.Error("Removing must not modify the original criteria")
	}
}

func TestCriteria_ToggleImpactAndPriority(t *testing.T) {
	c := Criteria{}.ToggleImpact(ImpactHigh)
	if c.Impact != ImpactHigh {
		t.Errorf("Expected impact high, got %q", c.Impact)
	}
	if c = c.ToggleImpact(ImpactHigh); c.Impact != "" {
		t.Errorf("Expected impact cleared, got %q", c.Impact)
	}

	c = c.TogglePriority(PriorityLow).TogglePriority(PriorityUrgent)
	if c.Priority != PriorityUrgent {
		t.Errorf("Expected priority urgent, got %q", c.Priority)
	}
	if !c.ToggleSentiment(SentimentNeutral).ToggleSentiment(SentimentNeutral).TogglePriority(PriorityUrgent).MatchesAll() {
		t.Error("Expected criteria to match all after clearing every axis")
	}
}

func TestLabels(t *testing.T) {
	if got := ImpactLabel(ImpactHigh); got != "High Impact" {
		t.Errorf("Expected 'High Impact', got '%s'", got)
	}
	if got := ImpactLabel(""); got != "Medium Impact" {
		t.Errorf("Expected unset impact to render as 'Medium Impact', got '%s'", got)
	}
	if got := PriorityLabel(DerivePriority(ImpactHigh)); got != "Urgent Priority" {
		t.Errorf("Expected 'Urgent Priority', got '%s'", got)
	}
	if got := SentimentLabel(SentimentNegative); got != "Negative" {
		t.Errorf("Expected 'Negative', got '%s'", got)
	}
}

func TestBandForStrength(t *testing.T) {
	tests := map[int]StrengthBand{10: StrengthStrong, 8: StrengthStrong, 7: StrengthModerate, 5: StrengthModerate, 4: StrengthWeak, 1: StrengthWeak}
	for strength, want := range tests {
		if got := BandForStrength(strength); got != want {
			t.Errorf("BandForStrength(%d) = %s, want %s", strength, got, want)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseSentiment("positive"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if _, err := ParseSentiment("Positive"); err == nil {
		t.Error("Expected error for unknown sentiment")
	}
	if _, err := ParseImpact("extreme"); err == nil {
		t.Error("Expected error for unknown impact")
	}
	if p, err := ParsePriority("urgent"); err != nil || p != PriorityUrgent {
		t.Errorf("Expected urgent, got %q (%v)", p, err)
	}
	if _, err := ParseTimeRange("decade"); err == nil {
		t.Error("Expected error for unknown time range")
	}
}
