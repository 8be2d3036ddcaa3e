package core

import "testing"

func TestBalanceDelta(t *testing.T) {
	tests := []struct {
		name   string
		ctype  CategoryType
		amount int64
		want   int64
	}{
		{"income adds", CategoryIncome, 250000, 250000},
		{"expense subtracts", CategoryExpense, 7525, -7525},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceDelta(tt.ctype, Money{Cents: tt.amount})
			if got.Cents != tt.want {
				t.Errorf("BalanceDelta(%s, %d) = %d, want %d", tt.ctype, tt.amount, got.Cents, tt.want)
			}
		})
	}
}

func TestRevertDeltaIsExactInverse(t *testing.T) {
	for _, ctype := range []CategoryType{CategoryIncome, CategoryExpense} {
		amount := Money{Cents: 7525}
		sum := BalanceDelta(ctype, amount).Add(RevertDelta(ctype, amount))
		if sum.Cents != 0 {
			t.Errorf("apply+revert for %s left residue of %d cents", ctype, sum.Cents)
		}
	}
}

// Walks the balance through a create/delete sequence and checks the running
// sum at every step.
func TestBalanceSequence(t *testing.T) {
	balance := Money{Cents: 100000} // 1000.00

	expense := Money{Cents: 7525} // 75.25
	balance = balance.Add(BalanceDelta(CategoryExpense, expense))
	if balance.Cents != 92475 {
		t.Fatalf("after expense: balance = %s, want 924.75", balance)
	}

	income := Money{Cents: 250000} // 2500.00
	balance = balance.Add(BalanceDelta(CategoryIncome, income))
	if balance.Cents != 342475 {
		t.Fatalf("after income: balance = %s, want 3424.75", balance)
	}

	// Deleting the expense adds its amount back.
	balance = balance.Add(RevertDelta(CategoryExpense, expense))
	if balance.Cents != 350000 {
		t.Fatalf("after deleting expense: balance = %s, want 3500.00", balance)
	}
}
