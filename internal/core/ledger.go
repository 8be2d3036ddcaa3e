package core

// BalanceDelta is the signed effect a transaction has on its account's
// balance: income categories add the amount, every other category type
// subtracts it. The sign comes from the category, never from the caller.
func BalanceDelta(t CategoryType, amount Money) Money {
	if t == CategoryIncome {
		return amount
	}
	return amount.Neg()
}

// RevertDelta is the exact inverse of BalanceDelta, applied when a
// transaction is deleted so the round trip restores the prior balance
// cent for cent.
func RevertDelta(t CategoryType, amount Money) Money {
	return BalanceDelta(t, amount).Neg()
}
