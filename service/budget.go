package service

// BudgetVerdict tells whether a path fits within one move budget.
type BudgetVerdict struct {
	Limit int  `json:"limit"`
	Moves int  `json:"moves"`
	Pass  bool `json:"pass"`
}

// EvaluateBudgets compares moves against each limit in order and stops at the
// first limit the path fits in. Limits after that one are not evaluated.
func EvaluateBudgets(moves int, limits []int) []BudgetVerdict {
	verdicts := make([]BudgetVerdict, 0, len(limits))
	for _, limit := range limits {
		pass := moves <= limit
		verdicts = append(verdicts, BudgetVerdict{Limit: limit, Moves: moves, Pass: pass})
		if pass {
			break
		}
	}
	return verdicts
}
