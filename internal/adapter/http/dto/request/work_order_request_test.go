package request

import (
	"testing"

	"mecanica_workorder/internal/domain/entities"
)

func TestCreateWorkOrderRequest_ToCommand(t *testing.T) {
	r := CreateWorkOrderRequest{OrderNumber: " OS-1001 ", TotalCost: 480.5, ActorID: " recepcao "}
	cmd := r.ToCommand()
	if cmd.OrderNumber != "OS-1001" || cmd.ActorID != "recepcao" || cmd.TotalCost != 480.5 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestQualityCheckRequest_ResolveOutcome(t *testing.T) {
	cases := map[string]entities.QualityOutcome{
		"passed":     entities.QualityOutcomePassed,
		" PASSED ":   entities.QualityOutcomePassed,
		"issues":     entities.QualityOutcomeIssues,
		"aprovado":   entities.QualityOutcomePassed,
		"Reprovado":  entities.QualityOutcomeIssues,
		"unexpected": entities.QualityOutcome("unexpected"),
	}
	for in, want := range cases {
		if got := (QualityCheckRequest{Outcome: in}).ResolveOutcome(); got != want {
			t.Fatalf("ResolveOutcome(%q) = %q, want %q", in, got, want)
		}
	}
	if (QualityCheckRequest{Outcome: "unexpected"}).ResolveOutcome().Valid() {
		t.Fatalf("expected unknown outcome to stay invalid")
	}
}
