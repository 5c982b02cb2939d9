package outcome

import (
	"reflect"
	"testing"
)

func TestAnalyzeNoTrigger(t *testing.T) {
	out := Analyze([]string{
		"The motion is granted.",
		"Damages of one million were requested.",
		"Therefore the schedule slipped.",
	})
	if !out.Empty() {
		t.Errorf("nothing may be recorded before a trigger: %+v", out)
	}
}

func TestAnalyzeTriggerSentenceNotClassified(t *testing.T) {
	// The trigger sentence contains a finding verb but only flips the state.
	out := Analyze([]string{"The court finds the evidence persuasive."})
	if !out.Empty() {
		t.Errorf("trigger sentence classified: %+v", out)
	}
}

func TestAnalyzeClassification(t *testing.T) {
	sentences := []string{
		"It is ordered as follows.",
		"The motion to dismiss is denied.",
		"Damages are set at one million dollars.",
		"This follows because the breach was proven.",
		"The court held the clause enforceable.",
	}
	out := Analyze(sentences)
	if out.Decision != sentences[1] {
		t.Errorf("decision: got %q", out.Decision)
	}
	if out.DamagesAwarded != sentences[2] {
		t.Errorf("damages: got %q", out.DamagesAwarded)
	}
	if !reflect.DeepEqual(out.Reasoning, []string{sentences[3]}) {
		t.Errorf("reasoning: got %v", out.Reasoning)
	}
	if !reflect.DeepEqual(out.KeyFindings, []string{sentences[4]}) {
		t.Errorf("findings: got %v", out.KeyFindings)
	}
}

func TestAnalyzeDecisionOverwrite(t *testing.T) {
	out := Analyze([]string{
		"The court concludes its review.",
		"The injunction is granted.",
		"The appeal is dismissed.",
	})
	if out.Decision != "The appeal is dismissed." {
		t.Errorf("later decision must overwrite: got %q", out.Decision)
	}
}

func TestAnalyzePriorityCascade(t *testing.T) {
	// A sentence with decision and reasoning keywords records only the decision.
	out := Analyze([]string{
		"It is ordered as follows.",
		"The motion is granted because the defense defaulted.",
	})
	if out.Decision == "" || len(out.Reasoning) != 0 {
		t.Errorf("cascade: decision=%q reasoning=%v", out.Decision, out.Reasoning)
	}
}

func TestAnalyzeAppendLists(t *testing.T) {
	out := Analyze([]string{
		"The court concludes its review.",
		"Therefore the claim succeeds.",
		"Accordingly the counterclaim fails.",
	})
	if len(out.Reasoning) != 2 {
		t.Errorf("reasoning should append: %v", out.Reasoning)
	}
}
