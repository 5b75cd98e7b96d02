package rule

import (
	"errors"
	"testing"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in   string
		want Operator
	}{
		{in: "eq", want: OpThen},
		{in: "then", want: OpThen},
		{in: "==", want: OpThen},
		{in: ">=", want: OpGte},
		{in: "LTE", want: OpLte},
		{in: " gt ", want: OpGt},
		{in: "<", want: OpLt},
	}

	for _, tt := range tests {
		got, err := ParseOperator(tt.in)
		if err != nil {
			t.Fatalf("ParseOperator(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOperator(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseOperator_Unknown(t *testing.T) {
	_, err := ParseOperator("between")
	if !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("expected ErrInvalidOperator, got %v", err)
	}
}

func TestValidateOperator(t *testing.T) {
	tests := []struct {
		name    string
		set     OperatorSet
		op      Operator
		wantErr error
	}{
		{name: "ordered gt", set: SetOrdered, op: OpGt},
		{name: "ordered alias", set: SetOrdered, op: Operator("<=")},
		{name: "equality then", set: SetEquality, op: OpThen},
		{name: "equality alias", set: SetEquality, op: Operator("==")},
		{name: "equality rejects gt", set: SetEquality, op: OpGt, wantErr: ErrOperatorNotOffered},
		{name: "equality rejects lte", set: SetEquality, op: OpLte, wantErr: ErrOperatorNotOffered},
		{name: "unknown", set: SetOrdered, op: Operator("regex"), wantErr: ErrInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperator(tt.set, tt.op)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
