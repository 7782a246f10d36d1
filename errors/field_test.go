package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declare errors upfront so that DeepEqual can be used for comparison.
	var (
		startErr    = Field("StartDate", ErrInput, "in the past")
		endErr      = Field("EndDate", ErrInput, "before start")
		amountErr   = Field("Amount", ErrAmount, "must be positive")
		nestedErr   = Field("Booking", Append(startErr, amountErr), "booking invalid")
		wrappedDeep = Field("Amount", amountErr, "outer")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   startErr,
			Field: "StartDate",
			Want:  []error{startErr},
		},
		"two errors, one matching": {
			Err:   Append(startErr, endErr),
			Field: "EndDate",
			Want:  []error{endErr},
		},
		"field can contain a multierror": {
			Err:   nestedErr,
			Field: "Booking",
			Want:  []error{nestedErr},
		},
		"field can inspect errors tree to find match": {
			Err:   nestedErr,
			Field: "Amount",
			Want:  []error{amountErr},
		},
		"outermost match is returned": {
			Err:   wrappedDeep,
			Field: "Amount",
			Want:  []error{wrappedDeep},
		},
		"no match": {
			Err:   nestedErr,
			Field: "Ticker",
			Want:  nil,
		},
		"nil error": {
			Err:   nil,
			Field: "Amount",
			Want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(got, tc.Want) {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

func TestFieldNil(t *testing.T) {
	if err := Field("Amount", nil, "ignored"); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := AppendField(nil, "Amount", nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestFieldMessage(t *testing.T) {
	err := Field("Amount", ErrAmount, "got %d", 0)
	if got, want := err.Error(), "Amount: got 0: invalid amount"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if !ErrAmount.Is(err) {
		t.Fatal("field error must keep its cause")
	}
	if _, ok := err.(*FieldError); !ok {
		t.Fatalf("want a field error, got %T", err)
	}
}
